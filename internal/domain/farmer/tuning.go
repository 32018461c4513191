package farmer

import "furrow/internal/domain/world"

const (
	StaminaWood     = 10
	StaminaStone    = 10
	StaminaWater    = 5
	StaminaDigging  = 5
	StaminaWatering = 5

	ExpCommon   = 5
	ExpWood     = 10
	ExpStone    = 10
	ExpDigging  = 6
	ExpWatering = 6

	PriceWood  = 5
	PriceStone = 5
	PriceSeed  = 10

	StartHP       = 100
	StartStamina  = 100
	StartMaxWater = 10
	StartGold     = 1000

	ExpToLevelUp          = 100
	ExpToLevelUpIncrement = 20
	CommonMaxHPBonus      = 10
	CommonMaxStaminaBonus = 5
	StaminaReducePerLevel = 1

	MaxToolLevel      = 5
	PerkCandidates    = 3
	WateringCanBonus  = 2
	TillGoldBonus     = 10
	DefaultSeasonDays = 28
	DefaultTileSizePx = 32
)

type PlayerTuning struct {
	HP        int             `yaml:"hp" json:"hp"`
	Stamina   int             `yaml:"stamina" json:"stamina"`
	MaxWater  int             `yaml:"max_water" json:"max_water"`
	Gold      int             `yaml:"gold" json:"gold"`
	Inventory map[string]int  `yaml:"inventory" json:"inventory"`
	Spawn     world.Cell      `yaml:"spawn" json:"spawn"`
	Facing    world.Direction `yaml:"facing" json:"facing"`
}

type StaminaCosts struct {
	Wood     int `yaml:"wood" json:"wood"`
	Stone    int `yaml:"stone" json:"stone"`
	Water    int `yaml:"water" json:"water"`
	Digging  int `yaml:"digging" json:"digging"`
	Watering int `yaml:"watering" json:"watering"`
}

type ExpRewards struct {
	Common   int `yaml:"common" json:"common"`
	Wood     int `yaml:"wood" json:"wood"`
	Stone    int `yaml:"stone" json:"stone"`
	Digging  int `yaml:"digging" json:"digging"`
	Watering int `yaml:"watering" json:"watering"`
}

type SkillTuning struct {
	ExpToLevelUp          int `yaml:"exp_to_level_up" json:"exp_to_level_up"`
	Increment             int `yaml:"increment" json:"increment"`
	MaxHPBonus            int `yaml:"max_hp_bonus" json:"max_hp_bonus"`
	MaxStaminaBonus       int `yaml:"max_stamina_bonus" json:"max_stamina_bonus"`
	StaminaReducePerLevel int `yaml:"stamina_reduce_per_level" json:"stamina_reduce_per_level"`
}

type UpgradeTuning struct {
	MaxLevel         int `yaml:"max_level" json:"max_level"`
	WoodPerLevel     int `yaml:"wood_per_level" json:"wood_per_level"`
	StonePerLevel    int `yaml:"stone_per_level" json:"stone_per_level"`
	GoldPerLevel     int `yaml:"gold_per_level" json:"gold_per_level"`
	Candidates       int `yaml:"candidates" json:"candidates"`
	WateringCanBonus int `yaml:"watering_can_bonus" json:"watering_can_bonus"`
}

type MarketTuning struct {
	SeedPrice   int            `yaml:"seed_price" json:"seed_price"`
	SellPrices  map[string]int `yaml:"sell_prices" json:"sell_prices"`
	MaxTypoDist int            `yaml:"max_typo_distance" json:"max_typo_distance"`
}

// Tuning is every gameplay number of a session. Defaults follow the shipped
// game; a YAML file may override any subset.
type Tuning struct {
	Player        PlayerTuning     `yaml:"player" json:"player"`
	Stamina       StaminaCosts     `yaml:"stamina" json:"stamina"`
	Exp           ExpRewards       `yaml:"exp" json:"exp"`
	Skills        SkillTuning      `yaml:"skills" json:"skills"`
	Upgrade       UpgradeTuning    `yaml:"upgrade" json:"upgrade"`
	Market        MarketTuning     `yaml:"market" json:"market"`
	Crops         world.CropConfig `yaml:"crops" json:"crops"`
	World         world.GenConfig  `yaml:"world" json:"world"`
	DaysPerSeason int              `yaml:"days_per_season" json:"days_per_season"`
	TillGoldBonus int              `yaml:"till_gold_bonus" json:"till_gold_bonus"`
	TileSize      int              `yaml:"tile_size" json:"tile_size"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			HP:        StartHP,
			Stamina:   StartStamina,
			MaxWater:  StartMaxWater,
			Gold:      StartGold,
			Inventory: map[string]int{},
			Spawn:     world.Cell{Row: 3, Col: 9},
			Facing:    world.DirDown,
		},
		Stamina: StaminaCosts{
			Wood:     StaminaWood,
			Stone:    StaminaStone,
			Water:    StaminaWater,
			Digging:  StaminaDigging,
			Watering: StaminaWatering,
		},
		Exp: ExpRewards{
			Common:   ExpCommon,
			Wood:     ExpWood,
			Stone:    ExpStone,
			Digging:  ExpDigging,
			Watering: ExpWatering,
		},
		Skills: SkillTuning{
			ExpToLevelUp:          ExpToLevelUp,
			Increment:             ExpToLevelUpIncrement,
			MaxHPBonus:            CommonMaxHPBonus,
			MaxStaminaBonus:       CommonMaxStaminaBonus,
			StaminaReducePerLevel: StaminaReducePerLevel,
		},
		Upgrade: UpgradeTuning{
			MaxLevel:         MaxToolLevel,
			WoodPerLevel:     5,
			StonePerLevel:    5,
			GoldPerLevel:     10,
			Candidates:       PerkCandidates,
			WateringCanBonus: WateringCanBonus,
		},
		Market: MarketTuning{
			SeedPrice: PriceSeed,
			SellPrices: map[string]int{
				"wood":                        PriceWood,
				"stone":                       PriceStone,
				string(world.FruitStrawberry): 40,
				string(world.FruitCherry):     25,
				string(world.FruitWatermelon): 50,
				string(world.FruitTomato):     25,
				string(world.FruitPumpkin):    50,
				string(world.FruitGrape):      30,
				string(world.FruitCabbage):    45,
				string(world.FruitTurnip):     20,
			},
			MaxTypoDist: 2,
		},
		Crops:         world.DefaultCropConfig(),
		World:         world.DefaultGenConfig(),
		DaysPerSeason: DefaultSeasonDays,
		TillGoldBonus: TillGoldBonus,
		TileSize:      DefaultTileSizePx,
	}
}
