package providers

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripconcierge/internal/models/trip_models"
)

// GeminiProvider is the free-tier alternative to OpenAI. Forcing the JSON
// response MIME type spares us brace-matching on the output.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) complete(ctx context.Context, brief, schema string) (string, error) {
	m := p.client.GenerativeModel(p.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(4000)

	prompt := plannerSystemPrompt + "\n\n" + brief +
		"\n\nReturn a JSON array; each element must match exactly:\n" + schema

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (p *GeminiProvider) SearchFlights(ctx context.Context, req trip_models.TripRequest) ([]trip_models.FlightOption, error) {
	raw, err := p.complete(ctx, flightBrief(req), `{"airline":"","flight_number":"","departure_time":"RFC3339","arrival_time":"RFC3339","departure_airport":"","arrival_airport":"","price":0,"class":"economy","duration":0,"stops":0,"is_selected":false,"seat_availability":0}`)
	if err != nil {
		return nil, err
	}
	return decodeFlightCandidates(raw, req)
}

func (p *GeminiProvider) SearchHotels(ctx context.Context, req trip_models.TripRequest) ([]trip_models.HotelOption, error) {
	raw, err := p.complete(ctx, hotelBrief(req), `{"name":"","address":"","star_rating":0,"price_per_night":0,"amenities":[],"room_type":"","total_price":0,"is_selected":false,"rating":0,"review_count":0}`)
	if err != nil {
		return nil, err
	}
	return decodeHotelCandidates(raw, req)
}

func (p *GeminiProvider) SearchActivities(ctx context.Context, req trip_models.TripRequest) ([]trip_models.ActivityOption, error) {
	raw, err := p.complete(ctx, activityBrief(req), `{"name":"","description":"","category":"sightseeing|adventure|food|culture|relaxation|shopping|nightlife|sports","price":0,"duration":0,"location":"","is_selected":false,"rating":0,"review_count":0}`)
	if err != nil {
		return nil, err
	}
	return decodeActivityCandidates(raw)
}

func (p *GeminiProvider) SearchTransportation(ctx context.Context, req trip_models.TripRequest) ([]trip_models.TransportationOption, error) {
	raw, err := p.complete(ctx, transportationBrief(req), `{"mode":"taxi|rideshare|public_transport|rental_car|shuttle|train|bus","provider":"","price":0,"duration":0,"is_selected":false}`)
	if err != nil {
		return nil, err
	}
	return decodeTransportationCandidates(raw)
}
