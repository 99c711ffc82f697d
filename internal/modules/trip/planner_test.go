package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tripgen/internal/ai"
)

// fakeCaller replays canned responses in order and records every prompt.
type fakeCaller struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeCaller) Call(ctx context.Context, prompt string, onAttempt func(string)) (ai.Result, error) {
	if onAttempt != nil {
		onAttempt("Fake Provider")
	}
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return ai.Result{}, f.err
	}
	i := len(f.prompts) - 1
	if i >= len(f.responses) {
		return ai.Result{}, errors.New("fakeCaller: out of responses")
	}
	return ai.Result{Text: f.responses[i], ProviderUsed: "Fake Provider"}, nil
}

// chunkJSON builds a minimal valid chunk response with the given day
// numbers, deliberately letting the caller choose wrong numbers.
func chunkJSON(summary string, dayNums ...int) string {
	var days []string
	for _, n := range dayNums {
		days = append(days, fmt.Sprintf(
			`{"day": %d, "date": "2026-01-01", "theme": "t", "location": "Jaipur", "places": [{"name": "Place %d", "category": "Heritage"}]}`, n, n))
	}
	return fmt.Sprintf(`{"summary": %q, "days": [%s]}`, summary, strings.Join(days, ","))
}

func planDates(days int) (time.Time, time.Time) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, days-1)
}

func TestGenerateSingleChunkForSevenDays(t *testing.T) {
	fc := &fakeCaller{responses: []string{chunkJSON("A week away", 1, 2, 3, 4, 5, 6, 7)}}
	start, end := planDates(7)

	itin, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur"}, StartDate: start, EndDate: end, AutoMode: true,
	}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(fc.prompts) != 1 {
		t.Errorf("chunk requests = %d, want exactly 1 for a 7-day trip", len(fc.prompts))
	}
	if len(itin.Days) != 7 {
		t.Errorf("days = %d, want 7", len(itin.Days))
	}
	if itin.Summary != "A week away" {
		t.Errorf("summary = %q", itin.Summary)
	}
	if itin.ProviderUsed != "Fake Provider" {
		t.Errorf("ProviderUsed = %q, want %q", itin.ProviderUsed, "Fake Provider")
	}
}

func TestGenerateTwoChunksForEightDays(t *testing.T) {
	// Second chunk mis-numbers its days on purpose; renumbering must win.
	fc := &fakeCaller{responses: []string{
		chunkJSON("Big trip", 1, 2, 3, 4, 5, 6, 7),
		chunkJSON("", 1),
	}}
	start, end := planDates(8)

	itin, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur", "Agra"}, StartDate: start, EndDate: end, AutoMode: true,
	}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(fc.prompts) != 2 {
		t.Fatalf("chunk requests = %d, want exactly 2 for an 8-day trip", len(fc.prompts))
	}
	if len(itin.Days) != 8 {
		t.Fatalf("days = %d, want 8", len(itin.Days))
	}
	for i, d := range itin.Days {
		if d.Day != i+1 {
			t.Errorf("days[%d].Day = %d, want %d (contiguous renumbering)", i, d.Day, i+1)
		}
	}
	if itin.Days[7].Date != start.AddDate(0, 0, 7).Format("2006-01-02") {
		t.Errorf("days[7].Date = %q, want last requested date", itin.Days[7].Date)
	}

	// Second chunk's prompt must carry the continuity hint and start day.
	second := fc.prompts[1]
	if !strings.Contains(second, "day 7") {
		t.Errorf("second chunk prompt lacks previous-day hint:\n%s", second)
	}
	if !strings.Contains(second, "starting at day 8") {
		t.Errorf("second chunk prompt lacks starting day number:\n%s", second)
	}
	if strings.Contains(fc.prompts[0], "continues an ongoing trip") {
		t.Errorf("first chunk prompt must not carry a continuity hint")
	}
}

func TestGenerateTrimsOversizedChunk(t *testing.T) {
	// Model hands back 8 days for a 7-day window; the extra day must not
	// push the timeline past the requested end date.
	fc := &fakeCaller{responses: []string{chunkJSON("Over-eager", 1, 2, 3, 4, 5, 6, 7, 8)}}
	start, end := planDates(7)

	itin, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur"}, StartDate: start, EndDate: end, AutoMode: true,
	}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(itin.Days) != 7 {
		t.Fatalf("days = %d, want 7 (oversized chunk trimmed)", len(itin.Days))
	}
	if got, want := itin.Days[6].Date, end.Format("2006-01-02"); got != want {
		t.Errorf("last date = %q, want requested end date %q", got, want)
	}
}

func TestGenerateSummaryFallback(t *testing.T) {
	fc := &fakeCaller{responses: []string{chunkJSON("", 1, 2, 3)}}
	start, end := planDates(3)

	itin, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Udaipur", "Jodhpur"}, StartDate: start, EndDate: end, AutoMode: true,
	}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if itin.Summary != "3-day trip across Udaipur, Jodhpur" {
		t.Errorf("summary = %q, want synthesized fallback", itin.Summary)
	}
}

func TestGenerateChunkFailureAborts(t *testing.T) {
	// First chunk fine, second chunk unusable: no partial itinerary.
	fc := &fakeCaller{responses: []string{
		chunkJSON("ok", 1, 2, 3, 4, 5, 6, 7),
		"I cannot produce an itinerary right now.",
	}}
	start, end := planDates(10)

	itin, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur"}, StartDate: start, EndDate: end, AutoMode: true,
	}, nil)
	if err == nil {
		t.Fatalf("Generate() = %+v, want error", itin)
	}
	if itin != nil {
		t.Errorf("Generate() returned partial itinerary alongside error")
	}
	var nerr *ai.NormalizationError
	if !errors.As(err, &nerr) {
		t.Errorf("error = %v, want wrapped *ai.NormalizationError", err)
	}
}

func TestGenerateRepairsSloppyChunkJSON(t *testing.T) {
	sloppy := "Here you go!\n```json\n{\"summary\": \"Fine trip\", \"days\": [{\"day\": 1, \"date\": \"2026-03-02\", \"places\": [{\"name\": \"Amber Fort\"},]}]}\n```"
	fc := &fakeCaller{responses: []string{sloppy}}
	start, end := planDates(1)

	itin, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur"}, StartDate: start, EndDate: end, AutoMode: true,
	}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(itin.Days) != 1 || len(itin.Days[0].Places) != 1 || itin.Days[0].Places[0].Name != "Amber Fort" {
		t.Errorf("itinerary = %+v, want repaired single day", itin)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	p := NewPlanner(&fakeCaller{})
	start, end := planDates(2)

	if _, err := p.Generate(context.Background(), PlanRequest{StartDate: start, EndDate: end}, nil); err == nil {
		t.Error("Generate() without locations: want error")
	}
	if _, err := p.Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur"}, StartDate: end, EndDate: start,
	}, nil); err == nil {
		t.Error("Generate() with reversed dates: want error")
	}
}

func TestGeneratePassesPlacePool(t *testing.T) {
	fc := &fakeCaller{responses: []string{chunkJSON("ok", 1)}}
	start, end := planDates(1)

	_, err := NewPlanner(fc).Generate(context.Background(), PlanRequest{
		Locations: []string{"Jaipur"},
		StartDate: start, EndDate: end,
		Places: []Place{{Name: "Amber Fort", Location: "Amer"}},
	}, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(fc.prompts[0], "ONLY these places") || !strings.Contains(fc.prompts[0], "Amber Fort") {
		t.Errorf("prompt does not constrain to the supplied pool:\n%s", fc.prompts[0])
	}
}
