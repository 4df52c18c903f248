package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/mealscope/backend/config"
	"github.com/mealscope/backend/internal/types"
)

const (
	// extractionModel and extractionMaxTokens are fixed; they are not
	// configurable per call.
	extractionModel     = "gpt-4o"
	extractionMaxTokens = 1024

	extractionToolName = "extract_nutrition_facts"
)

// NutritionService extracts structured nutrition facts from food images
// using a vision chat-completions endpoint with a single declared tool.
type NutritionService struct {
	client *openai.Client
}

// NewNutritionService creates a new NutritionService instance. A missing
// API key is not an error here; the provider rejects the call instead.
func NewNutritionService(cfg *config.Config) *NutritionService {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.APIBaseURL != "" {
		clientCfg.BaseURL = cfg.APIBaseURL
	}

	return &NutritionService{
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// extractionSchema describes the NutritionFacts shape passed verbatim to
// the provider's function-calling mechanism.
func extractionSchema() *jsonschema.Definition {
	riskLevel := jsonschema.Definition{
		Type: jsonschema.String,
		Enum: []string{"Low", "Moderate", "High"},
	}
	adviceList := jsonschema.Definition{
		Type:  jsonschema.Array,
		Items: &jsonschema.Definition{Type: jsonschema.String},
	}

	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"kcal":    {Type: jsonschema.Number, Description: "Total energy in kilocalories"},
			"protein": {Type: jsonschema.Number, Description: "Protein in grams"},
			"carbs":   {Type: jsonschema.Number, Description: "Carbohydrates in grams"},
			"fat":     {Type: jsonschema.Number, Description: "Fat in grams"},
			"sugar":   {Type: jsonschema.Number, Description: "Sugar in grams"},
			"fiber":   {Type: jsonschema.Number, Description: "Fiber in grams"},
			"sodium":  {Type: jsonschema.Number, Description: "Sodium in milligrams"},
			"purines": {Type: jsonschema.Number, Description: "Purine content in milligrams"},
			"ingredients": {
				Type:        jsonschema.Array,
				Description: "Ingredients visible or inferable in the dish",
				Items:       &jsonschema.Definition{Type: jsonschema.String},
			},
			"highPurineIngredients": {
				Type:        jsonschema.Array,
				Description: "Ingredients with elevated purine content",
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"ingredient":  {Type: jsonschema.String},
						"purineLevel": {Type: jsonschema.String},
					},
					Required: []string{"ingredient", "purineLevel"},
				},
			},
			"riskLevels": {
				Type:                 jsonschema.Object,
				Description:          "Risk level per provided illness",
				AdditionalProperties: riskLevel,
			},
			"recommendations": {
				Type:                 jsonschema.Object,
				Description:          "Dietary advice per provided illness",
				AdditionalProperties: adviceList,
			},
		},
		Required: []string{
			"kcal", "protein", "carbs", "fat", "sugar", "fiber", "sodium",
			"purines", "ingredients", "highPurineIngredients", "riskLevels",
			"recommendations",
		},
	}
}

// ExtractNutrition sends the food image and illness list to the model and
// returns the parsed tool-call arguments. If the model answers without
// invoking the tool, the serialized full response is returned instead.
// Any transport, provider or parse fault is logged and returned unchanged.
func (s *NutritionService) ExtractNutrition(ctx context.Context, sicknesses []types.Sickness, imageURL string) (*types.NutritionResult, error) {
	illnesses := make([]string, 0, len(sicknesses))
	for _, sickness := range sicknesses {
		illnesses = append(illnesses, string(sickness))
	}

	prompt := fmt.Sprintf(
		"Analyze the food in this image and extract its nutrition facts. "+
			"The user has the following conditions: %s. "+
			"Assess the risk level and give dietary recommendations for each condition.",
		strings.Join(illnesses, ", "),
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     extractionModel,
		MaxTokens: extractionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
		Tools: []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        extractionToolName,
					Description: "Record the nutrition facts extracted from a food image",
					Parameters:  extractionSchema(),
				},
			},
		},
	})
	if err != nil {
		log.Printf("[NutritionService] Chat completion failed: %v", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices in API response")
		log.Printf("[NutritionService] %v", err)
		return nil, err
	}

	message := resp.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		// Degraded fallback: the model answered in free text.
		raw, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[NutritionService] Failed to serialize fallback response: %v", err)
			return nil, err
		}
		log.Printf("[NutritionService] Model returned no tool call, raw response: %s", string(raw))
		return &types.NutritionResult{Raw: string(raw)}, nil
	}

	var facts types.NutritionFacts
	if err := json.Unmarshal([]byte(message.ToolCalls[0].Function.Arguments), &facts); err != nil {
		log.Printf("[NutritionService] Failed to parse tool arguments: %v", err)
		return nil, fmt.Errorf("failed to parse tool arguments: %w", err)
	}

	log.Printf("[NutritionService] Extracted nutrition facts: %+v", facts)
	return &types.NutritionResult{Facts: &facts}, nil
}
