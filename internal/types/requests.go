package types

// Sickness is one of the fixed illness categories used to steer the
// model's analysis and to key its risk/recommendation output.
type Sickness string

const (
	SicknessHighBloodPressure Sickness = "high blood pressure"
	SicknessGout              Sickness = "gout"
	SicknessDiabetes          Sickness = "diabetes"
	SicknessHeartDisease      Sickness = "heart disease"
	SicknessObesity           Sickness = "obesity"
	SicknessNone              Sickness = "none"
)

// Sicknesses lists every valid illness tag
func Sicknesses() []Sickness {
	return []Sickness{
		SicknessHighBloodPressure,
		SicknessGout,
		SicknessDiabetes,
		SicknessHeartDisease,
		SicknessObesity,
		SicknessNone,
	}
}

// AnalyzeRequest represents the request body for nutrition analysis
type AnalyzeRequest struct {
	Sicknesses []Sickness `json:"sicknesses" binding:"required,min=1"`
	ImageURL   string     `json:"image_url" binding:"required"`
}

// HighPurineIngredient pairs an ingredient with its purine level as
// reported by the model
type HighPurineIngredient struct {
	Ingredient  string `json:"ingredient"`
	PurineLevel string `json:"purineLevel"`
}

// NutritionFacts is the structured extraction returned by the model's
// tool call. Field presence and numeric ranges are shaped by the declared
// schema only; nothing is enforced locally.
type NutritionFacts struct {
	Kcal                  float64                `json:"kcal"`
	Protein               float64                `json:"protein"`
	Carbs                 float64                `json:"carbs"`
	Fat                   float64                `json:"fat"`
	Sugar                 float64                `json:"sugar"`
	Fiber                 float64                `json:"fiber"`
	Sodium                float64                `json:"sodium"`
	Purines               float64                `json:"purines"`
	Ingredients           []string               `json:"ingredients"`
	HighPurineIngredients []HighPurineIngredient `json:"highPurineIngredients"`
	RiskLevels            map[Sickness]string    `json:"riskLevels"`
	Recommendations       map[Sickness][]string  `json:"recommendations"`
}

// NutritionResult is the union returned by the extractor: Facts when the
// model invoked the declared tool, Raw (the serialized full response) when
// it answered without one. Exactly one side is set.
type NutritionResult struct {
	Facts *NutritionFacts `json:"facts,omitempty"`
	Raw   string          `json:"raw_response,omitempty"`
}

// UploadResult is the envelope returned by the upload relay. Callers
// branch on Success instead of handling an error.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}
