package providers

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"tripconcierge/internal/models/trip_models"
)

const plannerSystemPrompt = "You are a professional travel planner. " +
	"Provide detailed, realistic travel options with accurate pricing and information. " +
	"Return ONLY a JSON array matching the requested schema, no prose and no markdown."

// OpenAIProvider generates candidates through a chat completion per
// category. One item per singular category comes back pre-selected; the
// decode layer enforces that even when the model forgets.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIProvider) complete(ctx context.Context, brief, schema string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: plannerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: brief + "\n\nJSON schema for each array element:\n" + schema},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) SearchFlights(ctx context.Context, req trip_models.TripRequest) ([]trip_models.FlightOption, error) {
	raw, err := p.complete(ctx, flightBrief(req), `{"airline":"","flight_number":"","departure_time":"RFC3339","arrival_time":"RFC3339","departure_airport":"","arrival_airport":"","price":0,"class":"economy","duration":0,"stops":0,"is_selected":false,"seat_availability":0}`)
	if err != nil {
		return nil, err
	}
	return decodeFlightCandidates(raw, req)
}

func (p *OpenAIProvider) SearchHotels(ctx context.Context, req trip_models.TripRequest) ([]trip_models.HotelOption, error) {
	raw, err := p.complete(ctx, hotelBrief(req), `{"name":"","address":"","star_rating":0,"price_per_night":0,"amenities":[],"room_type":"","total_price":0,"is_selected":false,"rating":0,"review_count":0}`)
	if err != nil {
		return nil, err
	}
	return decodeHotelCandidates(raw, req)
}

func (p *OpenAIProvider) SearchActivities(ctx context.Context, req trip_models.TripRequest) ([]trip_models.ActivityOption, error) {
	raw, err := p.complete(ctx, activityBrief(req), `{"name":"","description":"","category":"sightseeing|adventure|food|culture|relaxation|shopping|nightlife|sports","price":0,"duration":0,"location":"","is_selected":false,"rating":0,"review_count":0}`)
	if err != nil {
		return nil, err
	}
	return decodeActivityCandidates(raw)
}

func (p *OpenAIProvider) SearchTransportation(ctx context.Context, req trip_models.TripRequest) ([]trip_models.TransportationOption, error) {
	raw, err := p.complete(ctx, transportationBrief(req), `{"mode":"taxi|rideshare|public_transport|rental_car|shuttle|train|bus","provider":"","price":0,"duration":0,"is_selected":false}`)
	if err != nil {
		return nil, err
	}
	return decodeTransportationCandidates(raw)
}
