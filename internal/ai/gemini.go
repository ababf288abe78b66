package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Inferrer using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// InferCategory asks Gemini for a cost modifier and recommended vehicle
// for a delivery category that is not in the static table.
func (p *GeminiProvider) InferCategory(ctx context.Context, category string) (CategoryResult, error) {
	prompt := buildCategoryPrompt(category)

	text, err := p.generate(ctx, prompt)
	if err != nil {
		return CategoryResult{}, err
	}
	return decodeCategoryReply(text)
}

// CurrentFuelPrice asks Gemini for today's average retail petrol price
// in Canada, in CAD per litre.
func (p *GeminiProvider) CurrentFuelPrice(ctx context.Context) (float64, error) {
	text, err := p.generate(ctx, fuelPricePrompt)
	if err != nil {
		return 0, err
	}
	return decodeFuelPriceReply(text)
}

// generate runs one completion and returns the concatenated text parts.
func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned empty text parts")
	}
	return sb.String(), nil
}

// decodeCategoryReply parses a category inference reply. The model is
// asked for JSON but replies are occasionally wrapped in markdown fences,
// so the text is cleaned before unmarshalling.
func decodeCategoryReply(text string) (CategoryResult, error) {
	clean := cleanJSONString(text)

	var result CategoryResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return CategoryResult{}, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, clean)
	}
	return result, nil
}

// decodeFuelPriceReply parses a fuel price reply into CAD per litre.
func decodeFuelPriceReply(text string) (float64, error) {
	clean := cleanJSONString(text)

	var result fuelPriceResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return 0, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, clean)
	}
	if result.Price <= 0 {
		return 0, fmt.Errorf("non-positive fuel price %v in reply", result.Price)
	}
	return result.Price, nil
}

// categoryExample is one in-context demonstration for the category prompt.
type categoryExample struct {
	input     string
	modifier  float64
	rationale string
	vehicle   string
}

// categoryExamples are the fixed demonstrations shown to the model before
// the unknown category. They cover every table category plus a few
// off-table cases so the model learns the whole modifier range.
var categoryExamples = []categoryExample{
	{"SENIOR APPOINTMENT", 0.7, "Senior appointments typically involve non-commercial transport and warrant a reduced cost.", "Car"},
	{"FLOWER DELIVERY", 1.2, "Flowers are perishable and delicate, requiring careful handling and timely delivery.", "Van"},
	{"FURNITURE DELIVERY", 1.8, "Bulk furniture is heavy and requires a large vehicle with significant loading capacity.", "Flatbed Truck"},
	{"CAKE DELIVERY", 1.3, "Cakes are fragile and often require temperature control to prevent spoilage.", "Reefers (Refrigerated Truck)"},
	{"MEDICINE", 0.6, "Medical deliveries require precision and timely transport, often with special handling.", "Car"},
	{"GROCERY DELIVERY", 0.9, "Groceries need careful handling and moderate transportation requirements.", "Van"},
	{"FOOD DELIVERY", 1.0, "Standard food delivery with typical transportation needs.", "Car"},
	{"CAR PARTS", 1.2, "Car parts vary in size and may require careful handling and protection.", "Pickup Truck"},
	{"TORONTO LAB", 1.3, "Laboratory deliveries often require specialized handling and timely transport.", "Van"},
	{"SENIOR (PACKAGE PICKUP)", 0.8, "Senior package pickups typically involve shorter, more considerate routes.", "Car"},
	{"SENIOR APPOINTMENT", 1.1, "Senior appointments require careful, comfortable transportation.", "Car"},
	{"CANNABIS DELIVERY", 1.2, "Regulated product requiring secure and discreet transportation.", "Car"},
	{"PICKUP TRUCK", 1.0, "Standard delivery with moderate transportation requirements.", "Pickup Truck"},
	{"VAN DELIVERY", 1.0, "Standard van delivery with typical transportation needs.", "Van"},
	{"STANDARD DELIVERY", 1.0, "Typical delivery with no special handling requirements.", "Car"},
	{"FLOWER DELIVERY", 1.1, "Flowers require gentle handling and timely delivery.", "Van"},
	{"CAR", 1.0, "Standard car transportation with no special requirements.", "Car"},
}

const categoryInstruction = "You are an intelligent assistant for logistics and delivery applications. " +
	"Your role is to determine the appropriate delivery category modifier based on the provided delivery category. " +
	"For an unknown delivery category, provide a reasonable cost modifier and recommended vehicle. " +
	"Analyze the category name to assign a modifier in the range 0.5 to 1.5."

const fuelPricePrompt = "What is today's average retail price of regular gasoline in Canada, " +
	"in CAD per litre? Respond with JSON only, in the form {\"price\": <number>}."

// buildCategoryPrompt renders the few-shot prompt for one unknown category.
func buildCategoryPrompt(category string) string {
	var sb strings.Builder
	sb.WriteString(categoryInstruction)
	sb.WriteString("\n\n")
	for _, ex := range categoryExamples {
		sb.WriteString(fmt.Sprintf("input: %s\n", ex.input))
		sb.WriteString(fmt.Sprintf(
			"output: {\n \"modifier\": %g,\n \"rationale\": %q,\n \"recommended_vehicle\": %q\n}\n",
			ex.modifier, ex.rationale, ex.vehicle,
		))
	}
	sb.WriteString(fmt.Sprintf("input: %s\n", category))
	sb.WriteString("output: ")
	return sb.String()
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
