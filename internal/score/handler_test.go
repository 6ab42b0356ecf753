package score

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studyai-server/internal/models"
)

type fakeAwarder struct {
	err        error
	calls      int
	gotUserID  string
	gotPoints  int
	entries    []models.LeaderboardEntry
	entriesErr error
}

func (f *fakeAwarder) AwardPoints(ctx context.Context, userID string, points int) error {
	f.calls++
	f.gotUserID = userID
	f.gotPoints = points
	return f.err
}

func (f *fakeAwarder) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return f.entries, f.entriesErr
}

func TestAwardCR_Success(t *testing.T) {
	svc := &fakeAwarder{}
	handler := NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/award-cr",
		strings.NewReader(`{"user_id":"user-1","points":25}`))
	rec := httptest.NewRecorder()
	handler.AwardCR(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if svc.gotUserID != "user-1" || svc.gotPoints != 25 {
		t.Errorf("awarded (%q, %d), want (user-1, 25)", svc.gotUserID, svc.gotPoints)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["message"] == "" {
		t.Errorf("response missing acknowledgment message")
	}
}

func TestAwardCR_NegativeDeltaAccepted(t *testing.T) {
	// The contract does no sign or magnitude validation.
	svc := &fakeAwarder{}
	handler := NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/award-cr",
		strings.NewReader(`{"user_id":"user-1","points":-10}`))
	rec := httptest.NewRecorder()
	handler.AwardCR(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotPoints != -10 {
		t.Errorf("points = %d, want -10", svc.gotPoints)
	}
}

func TestAwardCR_MissingUserID(t *testing.T) {
	svc := &fakeAwarder{}
	handler := NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/award-cr",
		strings.NewReader(`{"points":25}`))
	rec := httptest.NewRecorder()
	handler.AwardCR(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if svc.calls != 0 {
		t.Errorf("service called without user_id")
	}
}

func TestAwardCR_ServiceFailure(t *testing.T) {
	svc := &fakeAwarder{err: errors.New("function does not exist")}
	handler := NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/award-cr",
		strings.NewReader(`{"user_id":"user-1","points":5}`))
	rec := httptest.NewRecorder()
	handler.AwardCR(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestGetLeaderboard(t *testing.T) {
	svc := &fakeAwarder{entries: []models.LeaderboardEntry{
		{UserID: "user-1", Score: 100},
		{UserID: "user-2", Score: 75},
	}}
	handler := NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	handler.GetLeaderboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []models.LeaderboardEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 2 || got[0].Score < got[1].Score {
		t.Errorf("unexpected leaderboard: %+v", got)
	}
}
