// Package catalog defines the static product catalog used to seed demo
// marketing assets. Both the image and document pipelines read from the same
// record list, so slugs, names, and grades cannot drift between outputs.
package catalog

// Grade is a product quality category. It selects the color palette used for
// rendered assets.
type Grade string

// Known grades, from highest ceremony to everyday use.
const (
	GradeCeremonial  Grade = "Ceremonial"
	GradePremium     Grade = "Premium"
	GradeCulinary    Grade = "Culinary"
	GradeCompetition Grade = "Competition"
)

// Product is a single catalog record. Records are defined as package literals
// and treated as immutable; renderers take copies, never pointers.
type Product struct {
	Slug           string   `yaml:"slug"           toml:"slug"           json:"slug"`
	Name           string   `yaml:"name"           toml:"name"           json:"name"`
	Grade          Grade    `yaml:"grade"          toml:"grade"          json:"grade"`
	Region         string   `yaml:"region"         toml:"region"         json:"region"`
	Origin         string   `yaml:"origin"         toml:"origin"         json:"origin"`
	Harvest        string   `yaml:"harvest"        toml:"harvest"        json:"harvest"`
	Cultivation    string   `yaml:"cultivation"    toml:"cultivation"    json:"cultivation"`
	Processing     string   `yaml:"processing"     toml:"processing"     json:"processing"`
	Mesh           string   `yaml:"mesh"           toml:"mesh"           json:"mesh"`
	Color          string   `yaml:"color"          toml:"color"          json:"color"`
	Flavor         string   `yaml:"flavor"         toml:"flavor"         json:"flavor"`
	Aroma          string   `yaml:"aroma"          toml:"aroma"          json:"aroma"`
	Caffeine       string   `yaml:"caffeine"       toml:"caffeine"       json:"caffeine"`
	LTheanine      string   `yaml:"lTheanine"      toml:"l_theanine"     json:"lTheanine"`
	Catechins      string   `yaml:"catechins"      toml:"catechins"      json:"catechins"`
	ShelfLife      string   `yaml:"shelfLife"      toml:"shelf_life"     json:"shelfLife"`
	Storage        string   `yaml:"storage"        toml:"storage"        json:"storage"`
	Certifications []string `yaml:"certifications" toml:"certifications" json:"certifications"`
	Uses           []string `yaml:"uses"           toml:"uses"           json:"uses"`
	MOQ            string   `yaml:"moq"            toml:"moq"            json:"moq"`
	LeadTime       string   `yaml:"leadTime"       toml:"lead_time"      json:"leadTime"`
	PriceRange     string   `yaml:"priceRange"     toml:"price_range"    json:"priceRange"`
}

// Products returns the catalog in definition order. Records whose Slug is
// empty get one derived from Name via Slugify, keeping filenames a pure
// function of the record itself.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	for i := range out {
		if out[i].Slug == "" {
			out[i].Slug = Slugify(out[i].Name)
		}
	}
	return out
}

var products = []Product{
	{
		Name:           "Premium Ceremonial Uji",
		Grade:          GradeCeremonial,
		Region:         "Uji, Kyoto",
		Origin:         "Japan",
		Harvest:        "First Harvest (Ichibancha)",
		Cultivation:    "Shade-grown (20+ days)",
		Processing:     "Stone-ground",
		Mesh:           "1000+ mesh",
		Color:          "Vibrant green",
		Flavor:         "Rich umami, subtle sweetness, no bitterness",
		Aroma:          "Fresh, grassy, vegetal",
		Caffeine:       "~34mg per gram",
		LTheanine:      "~20mg per gram",
		Catechins:      "~100mg per gram",
		ShelfLife:      "12 months (unopened), 1 month (opened)",
		Storage:        "Cool, dry place away from light. Refrigerate after opening.",
		Certifications: []string{"JAS Organic", "USDA Organic", "EU Organic"},
		Uses:           []string{"Traditional tea ceremony", "Usucha preparation", "Premium beverages"},
		MOQ:            "5 kg",
		LeadTime:       "14 days",
		PriceRange:     "$80-120 per kg",
	},
	{
		Name:           "Organic Culinary Nishio",
		Grade:          GradeCulinary,
		Region:         "Nishio, Aichi",
		Origin:         "Japan",
		Harvest:        "Second/Third Harvest",
		Cultivation:    "Shade-grown (14 days)",
		Processing:     "Stone-ground",
		Mesh:           "800 mesh",
		Color:          "Yellow-green",
		Flavor:         "Strong, slightly bitter, robust",
		Aroma:          "Earthy, vegetal",
		Caffeine:       "~32mg per gram",
		LTheanine:      "~14mg per gram",
		Catechins:      "~120mg per gram",
		ShelfLife:      "18 months (unopened), 2 months (opened)",
		Storage:        "Cool, dry place away from light.",
		Certifications: []string{"JAS Organic", "USDA Organic"},
		Uses:           []string{"Baking", "Smoothies", "Lattes", "Ice cream", "Cooking"},
		MOQ:            "10 kg",
		LeadTime:       "10 days",
		PriceRange:     "$25-45 per kg",
	},
	{
		Name:           "Classic Usucha Blend",
		Grade:          GradePremium,
		Region:         "Uji, Kyoto",
		Origin:         "Japan",
		Harvest:        "First Harvest (Ichibancha)",
		Cultivation:    "Shade-grown (18 days)",
		Processing:     "Stone-ground",
		Mesh:           "900 mesh",
		Color:          "Bright green",
		Flavor:         "Balanced umami and sweetness",
		Aroma:          "Fresh, slightly sweet",
		Caffeine:       "~33mg per gram",
		LTheanine:      "~18mg per gram",
		Catechins:      "~105mg per gram",
		ShelfLife:      "12 months (unopened), 1 month (opened)",
		Storage:        "Cool, dry place away from light. Refrigerate after opening.",
		Certifications: []string{"JAS Organic"},
		Uses:           []string{"Daily usucha", "Premium lattes", "Desserts"},
		MOQ:            "5 kg",
		LeadTime:       "12 days",
		PriceRange:     "$50-70 per kg",
	},
	{
		Name:           "First Harvest Shincha",
		Grade:          GradeCeremonial,
		Region:         "Shizuoka",
		Origin:         "Japan",
		Harvest:        "First Harvest (Ichibancha) - Spring",
		Cultivation:    "Shade-grown (21 days)",
		Processing:     "Stone-ground, fresh processed",
		Mesh:           "1000+ mesh",
		Color:          "Brilliant emerald green",
		Flavor:         "Exceptionally sweet, deep umami",
		Aroma:          "Fresh spring grass, floral notes",
		Caffeine:       "~35mg per gram",
		LTheanine:      "~22mg per gram",
		Catechins:      "~95mg per gram",
		ShelfLife:      "6 months (unopened), 2 weeks (opened)",
		Storage:        "Refrigerate immediately. Consume quickly for best flavor.",
		Certifications: []string{"JAS Organic", "Single Origin"},
		Uses:           []string{"Tea ceremony", "Special occasions", "Koicha preparation"},
		MOQ:            "2 kg",
		LeadTime:       "7 days (seasonal availability)",
		PriceRange:     "$120-180 per kg",
	},
	{
		Name:           "Daily Matcha Kagoshima",
		Grade:          GradeCulinary,
		Region:         "Kagoshima",
		Origin:         "Japan",
		Harvest:        "Second Harvest",
		Cultivation:    "Partial shade (10 days)",
		Processing:     "Stone-ground",
		Mesh:           "600 mesh",
		Color:          "Green with yellow tones",
		Flavor:         "Mild, slightly astringent",
		Aroma:          "Light, grassy",
		Caffeine:       "~30mg per gram",
		LTheanine:      "~12mg per gram",
		Catechins:      "~130mg per gram",
		ShelfLife:      "24 months (unopened), 3 months (opened)",
		Storage:        "Cool, dry place.",
		Certifications: nil,
		Uses:           []string{"Daily beverages", "Commercial food production", "Bulk cooking"},
		MOQ:            "25 kg",
		LeadTime:       "7 days",
		PriceRange:     "$15-25 per kg",
	},
	{
		Name:           "Competition Grade Uji",
		Grade:          GradeCompetition,
		Region:         "Uji, Kyoto",
		Origin:         "Japan",
		Harvest:        "First Harvest, Hand-picked",
		Cultivation:    "Traditional shade-grown (25+ days)",
		Processing:     "Hand-picked, stone-ground by master",
		Mesh:           "1200+ mesh (ultra-fine)",
		Color:          "Deep vibrant jade green",
		Flavor:         "Complex umami, natural sweetness, zero bitterness",
		Aroma:          "Intensely fresh, complex vegetal notes",
		Caffeine:       "~36mg per gram",
		LTheanine:      "~25mg per gram",
		Catechins:      "~90mg per gram",
		ShelfLife:      "6 months (unopened), 2 weeks (opened)",
		Storage:        "Refrigerate. Use nitrogen-flushed container.",
		Certifications: []string{"JAS Organic", "Award Winner", "Single Estate"},
		Uses:           []string{"Competition", "Tea ceremony masters", "Ultra-premium service"},
		MOQ:            "1 kg",
		LeadTime:       "21 days (limited availability)",
		PriceRange:     "$200-400 per kg",
	},
	{
		Name:           "Organic Ceremonial Kyoto",
		Grade:          GradeCeremonial,
		Region:         "Kyoto",
		Origin:         "Japan",
		Harvest:        "First Harvest (Ichibancha)",
		Cultivation:    "Organic shade-grown (20 days)",
		Processing:     "Stone-ground",
		Mesh:           "1000 mesh",
		Color:          "Vivid green",
		Flavor:         "Smooth umami, gentle sweetness",
		Aroma:          "Clean, fresh, slightly marine",
		Caffeine:       "~34mg per gram",
		LTheanine:      "~19mg per gram",
		Catechins:      "~98mg per gram",
		ShelfLife:      "12 months (unopened), 1 month (opened)",
		Storage:        "Cool, dry place away from light. Refrigerate after opening.",
		Certifications: []string{"JAS Organic", "USDA Organic", "EU Organic", "Kosher"},
		Uses:           []string{"Tea ceremony", "Premium beverages", "Health-conscious consumers"},
		MOQ:            "5 kg",
		LeadTime:       "14 days",
		PriceRange:     "$90-130 per kg",
	},
	{
		Name:           "Cafe Blend Matcha",
		Grade:          GradeCulinary,
		Region:         "Nishio, Aichi",
		Origin:         "Japan",
		Harvest:        "Blended harvests",
		Cultivation:    "Mixed cultivation",
		Processing:     "Stone-ground, blended for consistency",
		Mesh:           "700 mesh",
		Color:          "Consistent green",
		Flavor:         "Bold, stands up to milk and sweeteners",
		Aroma:          "Robust, earthy",
		Caffeine:       "~31mg per gram",
		LTheanine:      "~13mg per gram",
		Catechins:      "~115mg per gram",
		ShelfLife:      "18 months (unopened), 3 months (opened)",
		Storage:        "Cool, dry place.",
		Certifications: []string{"Food Service Grade"},
		Uses:           []string{"Cafe lattes", "Smoothies", "Commercial beverages", "Desserts"},
		MOQ:            "20 kg",
		LeadTime:       "7 days",
		PriceRange:     "$20-35 per kg",
	},
}
