package names

// Tool categories as shown on the inventory screen.
const (
	CategoryRed    = "Red"
	CategoryBlue   = "Blue"
	CategoryYellow = "Yellow"
	CategorySkill  = "Skill"
)

// Bosses are playerData flags set when a boss is beaten.
var Bosses = newDictionary("Bosses", []Entry{
	{Key: "defeatedMossMother", Label: "Moss Mother"},
	{Key: "defeatedBellBeast", Label: "Bell Beast"},
	{Key: "defeatedLace1", Label: "Lace 1 (Deep Docks)"},
	{Key: "defeatedSongGolem", Label: "Fourth Chorus"},
	{Key: "defeatedVampireGnatBoss", Label: "Moorwing"},
	{Key: "defeatedSplinterQueen", Label: "Sister Splinter"},
	{Key: "skullKingDefeated", Label: "Skull Tyrant 1"},
	{Key: "skullKingKilled", Label: "Skull Tyrant 2"},
	{Key: "defeatedCoralDrillers", Label: "Great Conchflies"},
	{Key: "defeatedPhantom", Label: "Phantom"},
	{Key: "defeatedLastJudge", Label: "The Last Judge"},
	{Key: "defeatedBoneFlyerGiant", Label: "Savage Beastfly 1"},
	{Key: "defeatedBoneFlyerGiantGolemScene", Label: "Savage Beastfly 2"},
	{Key: "defeatedCogworkDancers", Label: "Cogwork Dancers"},
	{Key: "defeatedTrobbio", Label: "Trobbio"},
	{Key: "defeatedSongChevalierBoss", Label: "Second Sentinel"},
	{Key: "defeatedFirstWeaver", Label: "First Sinner"},
	{Key: "defeatedRoachkeeperChef", Label: "Disgraced Chef Lugoli"},
	{Key: "defeatedBroodMother", Label: "Broodmother"},
	{Key: "defeatedWispPyreEffigy", Label: "Father of the Flame"},
	{Key: "defeatedCoralDrillerSolo", Label: "Raging Conchfly"},
	{Key: "defeatedDockForemen", Label: "Forebrothers Signis & Gron"},
	{Key: "wardBossDefeated", Label: "The Unravelled"},
	{Key: "DefeatedSwampShaman", Label: "Groal the Great"},
	{Key: "defeatedZapCoreEnemy", Label: "Voltvyrm"},
	{Key: "defeatedLaceTower", Label: "Lace 2 (The Cradle)"},
	{Key: "garmondBlackThreadDefeated", Label: "Lost Garmond"},
	{Key: "defeatedAntTrapper", Label: "Gurr the Outcast"},
	{Key: "PinstressPeakBattleAccepted", Label: "Pinstress"},
	{Key: "defeatedTormentedTrobbio", Label: "Tormented Trobbio"},
	{Key: "defeatedWhiteCloverstag", Label: "Palestag"},
	{Key: "defeatedAntQueen", Label: "Skarrsinger Karmelita"},
	{Key: "defeatedCoralKing", Label: "Crust King Khann"},
	{Key: "defeatedSeth", Label: "Seth"},
	{Key: "defeatedFlowerQueen", Label: "Nyleth"},
	{Key: "defeatedCloverDancers", Label: "Clover Dancers"},
	{Key: "Abyss Mass", Label: "Summoned Saviour"},
})

// Maps are playerData flags set when an area map is bought.
var Maps = newDictionary("Maps", []Entry{
	{Key: "HasMossGrottoMap", Label: "Moss Grotto"},
	{Key: "HasBoneforestMap", Label: "The Marrow"},
	{Key: "HasDocksMap", Label: "Deep Docks"},
	{Key: "HasWildsMap", Label: "Far Fields"},
	{Key: "HasGreymoorMap", Label: "Greymoor"},
	{Key: "HasBellhartMap", Label: "Bellhart"},
	{Key: "HasShellwoodMap", Label: "Shellwood"},
	{Key: "HasHuntersNestMap", Label: "Hunter's March"},
	{Key: "HasJudgeStepsMap", Label: "Blasted Steps"},
	{Key: "HasPeakMap", Label: "Mount Fay"},
	{Key: "HasSlabMap", Label: "The Slab"},
	{Key: "HasSwampMap", Label: "Bilewater"},
	{Key: "HasAqueductMap", Label: "Putrified Ducts"},
	{Key: "HasCoralMap", Label: "Sands of Karak"},
	{Key: "HasWeavehomeMap", Label: "Weavernest Atla"},
	{Key: "HasCrawlMap", Label: "Wormways"},
	{Key: "HasDustpensMap", Label: "Sinner's Road"},
	{Key: "HasSongGateMap", Label: "Citadel - Grand Gate"},
	{Key: "HasCitadelUnderstoreMap", Label: "Citadel - Underworks"},
	{Key: "HasCogMap", Label: "Citadel - Cogwork Core"},
	{Key: "HasArboriumMap", Label: "Citadel - Memorium"},
	{Key: "HasWardMap", Label: "Citadel - Whiteward"},
	{Key: "HasLibraryMap", Label: "Citadel - Whispering Vault"},
	{Key: "HasHallsMap", Label: "Citadel - Choral Chambers"},
	{Key: "HasHangMap", Label: "Citadel - High Halls"},
	{Key: "HasCradleMap", Label: "The Cradle"},
	{Key: "HasAbyssMap", Label: "The Abyss"},
	{Key: "HasCloverMap", Label: "Verdania"},
})

// Fleas are playerData flags set when a flea is rescued.
var Fleas = newDictionary("Fleas", []Entry{
	{Key: "SavedFlea_Ant_03", Label: "Flea (Ant 03)"},
	{Key: "SavedFlea_Belltown_04", Label: "Flea (Belltown 04)"},
	{Key: "SavedFlea_Bone_06", Label: "Flea (Bone 06)"},
	{Key: "SavedFlea_Bone_East_05", Label: "Flea (Bone East 05)"},
	{Key: "SavedFlea_Bone_East_10_Church", Label: "Flea (Bone East Church)"},
	{Key: "SavedFlea_Bone_East_17b", Label: "Flea (Bone East 17b)"},
	{Key: "SavedFlea_Coral_24", Label: "Flea (Coral 24)"},
	{Key: "SavedFlea_Coral_35", Label: "Flea (Coral 35)"},
	{Key: "SavedFlea_Crawl_06", Label: "Flea (Crawl 06)"},
	{Key: "SavedFlea_Dock_03d", Label: "Flea (Dock 03d)"},
	{Key: "SavedFlea_Dock_16", Label: "Flea (Dock 16)"},
	{Key: "SavedFlea_Dust_09", Label: "Flea (Dust 09)"},
	{Key: "SavedFlea_Dust_12", Label: "Flea (Dust 12)"},
	{Key: "SavedFlea_Greymoor_06", Label: "Flea (Greymoor 06)"},
	{Key: "SavedFlea_Greymoor_15b", Label: "Flea (Greymoor 15b)"},
	{Key: "SavedFlea_Library_01", Label: "Flea (Library 01)"},
	{Key: "SavedFlea_Library_09", Label: "Flea (Library 09)"},
	{Key: "SavedFlea_Peak_05c", Label: "Flea (Peak 05c)"},
	{Key: "SavedFlea_Shadow_10", Label: "Flea (Shadow 10)"},
	{Key: "SavedFlea_Shadow_28", Label: "Flea (Shadow 28)"},
	{Key: "SavedFlea_Shellwood_03", Label: "Flea (Shellwood 03)"},
	{Key: "SavedFlea_Slab_06", Label: "Flea (Slab 06)"},
	{Key: "SavedFlea_Slab_Cell", Label: "Flea (Slab Cell)"},
	{Key: "SavedFlea_Song_11", Label: "Flea (Song 11)"},
	{Key: "SavedFlea_Song_14", Label: "Flea (Song 14)"},
	{Key: "SavedFlea_Under_21", Label: "Flea (Under 21)"},
	{Key: "SavedFlea_Under_23", Label: "Flea (Under 23)"},
	{Key: "CaravanLechReturnedToCaravan", Label: "Kratt"},
	{Key: "tamedGiantFlea", Label: "Huge Flea"},
	{Key: "MetTroupeHunterWild", Label: "Vog"},
})

// Skills are playerData flags for learned silk skills.
var Skills = newDictionary("Skills", []Entry{
	{Key: "hasNeedleThrow", Label: "Silkspear"},
	{Key: "hasThreadSphere", Label: "Thread Storm"},
	{Key: "hasParry", Label: "Cross Stitch"},
	{Key: "hasSilkCharge", Label: "Sharpdart"},
	{Key: "hasSilkBomb", Label: "Rune Rage"},
	{Key: "hasSilkBossNeedle", Label: "Pale Nails"},
})

// EquipSkills are silk skills as they appear in crest slots.
var EquipSkills = newDictionary("EquipSkills", []Entry{
	{Key: "Silk Spear", Label: "Silkspear", Category: CategorySkill},
	{Key: "Thread Sphere", Label: "Thread Storm", Category: CategorySkill},
	{Key: "Parry", Label: "Cross Stitch", Category: CategorySkill},
	{Key: "Silk Dart", Label: "Sharpdart", Category: CategorySkill},
	{Key: "Silk Charge", Label: "Sharpdart", Category: CategorySkill},
	{Key: "Silk Bomb", Label: "Rune Rage", Category: CategorySkill},
	{Key: "Finger Blades", Label: "Pale Nails", Category: CategorySkill},
	{Key: "Silk Boss Needle", Label: "Pale Nails", Category: CategorySkill},
})

// Tools is the tool catalogue keyed by the Name used in Tools.savedData.
var Tools = newDictionary("Tools", []Entry{
	{Key: "Straight Pin", Label: "Straight Pin", Category: CategoryRed},
	{Key: "Tri Pin", Label: "Threefold Pin", Category: CategoryRed},
	{Key: "Sting Shard", Label: "Sting Shard", Category: CategoryRed},
	{Key: "Tack", Label: "Tacks", Category: CategoryRed},
	{Key: "Harpoon", Label: "Longpin", Category: CategoryRed},
	{Key: "Curve Claws", Label: "Curveclaw", Category: CategoryRed},
	{Key: "Curve Claws Upgraded", Label: "Curvesickle", Category: CategoryRed},
	{Key: "Shakra Ring", Label: "Throwing Ring", Category: CategoryRed},
	{Key: "Pimpilo", Label: "Pimpillo", Category: CategoryRed},
	{Key: "Conch Drill", Label: "Conchcutter", Category: CategoryRed},
	{Key: "WebShot Forge", Label: "Silkshot (Forge Daughter)", Category: CategoryRed},
	{Key: "WebShot Architect", Label: "Silkshot (Twelfth Architect)", Category: CategoryRed},
	{Key: "WebShot Weaver", Label: "Silkshot (Mount Fay)", Category: CategoryRed},
	{Key: "Screw Attack", Label: "Delver's Drill", Category: CategoryRed},
	{Key: "Cogwork Saw", Label: "Cogwork Wheel", Category: CategoryRed},
	{Key: "Cogwork Flier", Label: "Cogfly", Category: CategoryRed},
	{Key: "Rosary Cannon", Label: "Rosary Cannon", Category: CategoryRed},
	{Key: "Flintstone", Label: "Flintslate", Category: CategoryRed},
	{Key: "Silk Snare", Label: "Snare Setter", Category: CategoryRed},
	{Key: "Flea Brew", Label: "Flea Brew", Category: CategoryRed},
	{Key: "Lifeblood Syringe", Label: "Plasmium Phial", Category: CategoryRed},
	{Key: "Extractor", Label: "Needle Phial", Category: CategoryRed},
	{Key: "Lightning Rod", Label: "Voltvessels", Category: CategoryRed},

	{Key: "Mosscreep Tool 1", Label: "Druid's Eye", Category: CategoryBlue},
	{Key: "Mosscreep Tool 2", Label: "Druid's Eyes", Category: CategoryBlue},
	{Key: "Lava Charm", Label: "Magma Bell", Category: CategoryBlue},
	{Key: "Bell Bind", Label: "Warding Bell", Category: CategoryBlue},
	{Key: "Poison Pouch", Label: "Pollip Pouch", Category: CategoryBlue},
	{Key: "Fractured Mask", Label: "Fractured Mask", Category: CategoryBlue},
	{Key: "Multibind", Label: "Multibinder", Category: CategoryBlue},
	{Key: "White Ring", Label: "Weavelight", Category: CategoryBlue},
	{Key: "Brolly Spike", Label: "Sawtooth Circlet", Category: CategoryBlue},
	{Key: "Quickbind", Label: "Injector Band", Category: CategoryBlue},
	{Key: "Spool Extender", Label: "Spool Extender", Category: CategoryBlue},
	{Key: "Reserve Bind", Label: "Reserve Bind", Category: CategoryBlue},
	{Key: "Dazzle Bind", Label: "Claw Mirror", Category: CategoryBlue},
	{Key: "Dazzle Bind Upgraded", Label: "Claw Mirrors", Category: CategoryBlue},
	{Key: "Revenge Crystal", Label: "Memory Crystal", Category: CategoryBlue},
	{Key: "Thief Claw", Label: "Snitch Pick", Category: CategoryBlue},
	{Key: "Zap Imbuement", Label: "Volt Filament", Category: CategoryBlue},
	{Key: "Quick Sling", Label: "Quick Sling", Category: CategoryBlue},
	{Key: "Maggot Charm", Label: "Wreath of Purity", Category: CategoryBlue},
	{Key: "Longneedle", Label: "Longclaw", Category: CategoryBlue},
	{Key: "Wisp Lantern", Label: "Wispfire Lantern", Category: CategoryBlue},
	{Key: "Flea Charm", Label: "Egg of Flealia", Category: CategoryBlue},
	{Key: "Pinstress Tool", Label: "Pin Badge", Category: CategoryBlue},

	{Key: "Compass", Label: "Compass", Category: CategoryYellow},
	{Key: "Bone Necklace", Label: "Shard Pendant", Category: CategoryYellow},
	{Key: "Rosary Magnet", Label: "Magnetite Brooch", Category: CategoryYellow},
	{Key: "Weighted Anklet", Label: "Weighted Belt", Category: CategoryYellow},
	{Key: "Barbed Wire", Label: "Barbed Bracelet", Category: CategoryYellow},
	{Key: "Dead Mans Purse", Label: "Dead Bug's Purse", Category: CategoryYellow},
	{Key: "Shell Satchel", Label: "Shell Satchel", Category: CategoryYellow},
	{Key: "Magnetite Dice", Label: "Magnetite Dice", Category: CategoryYellow},
	{Key: "Scuttlebrace", Label: "Scuttlebrace", Category: CategoryYellow},
	{Key: "Wallcling", Label: "Ascendant's Grip", Category: CategoryYellow},
	{Key: "Musician Charm", Label: "Spider Strings", Category: CategoryYellow},
	{Key: "Sprintmaster", Label: "Silkspeed Anklets", Category: CategoryYellow},
	{Key: "Thief Charm", Label: "Thief's Mark", Category: CategoryYellow},
})
