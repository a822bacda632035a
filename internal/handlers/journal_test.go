package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/unwind-app/unwind-backend/internal/config"
	"github.com/unwind-app/unwind-backend/internal/database"
	"github.com/unwind-app/unwind-backend/internal/models"
	"github.com/unwind-app/unwind-backend/internal/services"
	"github.com/unwind-app/unwind-backend/internal/store"
)

// setupHandlerTest points the package-level database at a throwaway file and
// wires an advisor against the given fake completion endpoint.
func setupHandlerTest(t *testing.T, aiBaseURL string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := database.InitSchema(db, "friend"); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		db.Close()
	})

	InitAdvisor(&config.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIModel:   "gpt-4o",
		OpenAIBaseURL: aiBaseURL,
		Nickname:      "friend",
	})
}

// newFakeCompletionServer answers every chat request with the same content.
func newFakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func TestCreateAndListJournalEntries(t *testing.T) {
	srv := newFakeCompletionServer(t, "unused")
	defer srv.Close()
	setupHandlerTest(t, srv.URL)

	body := `{"original_thought":"I always mess up","reframed_thought":"I'm learning, and that's enough","method":"self-guided"}`
	req := httptest.NewRequest(http.MethodPost, "/api/journal", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateJournalEntry(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created CreateJournalEntryResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !created.Success || created.Entry == nil {
		t.Fatalf("Expected a saved entry, got %+v", created)
	}
	if created.Entry.OriginalThought != "I always mess up" {
		t.Errorf("Unexpected original thought: %q", created.Entry.OriginalThought)
	}
	if created.Entry.ReframingMethod != models.MethodSelfGuided {
		t.Errorf("Unexpected method: %q", created.Entry.ReframingMethod)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/journal", nil)
	rec = httptest.NewRecorder()
	GetJournalEntries(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var list GetJournalEntriesResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if list.Total != 1 || len(list.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %+v", list)
	}
}

func TestCreateJournalEntryRejectsEmptyThought(t *testing.T) {
	srv := newFakeCompletionServer(t, "unused")
	defer srv.Close()
	setupHandlerTest(t, srv.URL)

	for _, body := range []string{
		`{"original_thought":"","reframed_thought":"x"}`,
		`{"original_thought":"x","reframed_thought":"   "}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/journal", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateJournalEntry(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Body %s: expected 400, got %d", body, rec.Code)
		}
	}

	entries, err := store.GetThoughtEntries(database.DB)
	if err != nil {
		t.Fatalf("GetThoughtEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Rejected saves must not write rows; got %d", len(entries))
	}
}

func TestReframeThoughtSavesAISuggestedEntry(t *testing.T) {
	srv := newFakeCompletionServer(t, "A gentler take on it.")
	defer srv.Close()
	setupHandlerTest(t, srv.URL)

	body := `{"thought":"Everyone is disappointed in me","save":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/reframe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ReframeThought(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ReframeThoughtResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ReframedThought != "A gentler take on it." {
		t.Errorf("Unexpected reframing: %q", resp.ReframedThought)
	}
	if resp.EntryID == 0 {
		t.Fatal("Expected the pair to be saved to the journal")
	}

	entries, err := store.GetThoughtEntries(database.DB)
	if err != nil {
		t.Fatalf("GetThoughtEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ReframingMethod != models.MethodAISuggested {
		t.Errorf("Expected one ai-suggested entry, got %+v", entries)
	}
}

func TestGetTodayMessageGeneratesOncePerDay(t *testing.T) {
	srv := newFakeCompletionServer(t, "Be gentle with yourself today.")
	defer srv.Close()
	setupHandlerTest(t, srv.URL)

	sess := services.CreateSession()
	t.Cleanup(func() { services.InvalidateSession(sess.Token) })

	get := func() TodayMessageResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/message/today", nil)
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		rec := httptest.NewRecorder()
		GetTodayMessage(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp TodayMessageResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return resp
	}

	first := get()
	if !first.Generated || first.Daily != "Be gentle with yourself today." {
		t.Fatalf("Expected a freshly generated message, got %+v", first)
	}

	second := get()
	if second.Generated {
		t.Errorf("Second request on the same day must reuse the stored message, got %+v", second)
	}
	if second.Daily != first.Daily {
		t.Errorf("Expected the same message, got %q then %q", first.Daily, second.Daily)
	}

	latest, err := store.GetLatestDailyMessage(database.DB)
	if err != nil {
		t.Fatalf("GetLatestDailyMessage failed: %v", err)
	}
	if latest == nil || latest.Message != first.Daily {
		t.Errorf("Expected the generated message to be persisted, got %+v", latest)
	}
}
