package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"contactbook/internal/models"
	"contactbook/internal/store"
	"contactbook/internal/store/memstore"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer() (*gin.Engine, store.Stores) {
	st := memstore.New().Stores()
	return Router(st), st
}

// seedUser creates a user with password "test" and the given live token.
func seedUser(t *testing.T, st store.Stores, username, token string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("test"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username: username,
		Password: string(hash),
		Name:     "Test",
		Token:    token,
	}
	if err := st.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedContact(t *testing.T, st store.Stores, userID int64) *models.Contact {
	t.Helper()
	contact := &models.Contact{
		UserID:    userID,
		FirstName: "Test",
		LastName:  "User",
		Email:     "test_user@mail.com",
		Phone:     "08987654321",
	}
	if err := st.Contacts.Create(context.Background(), contact); err != nil {
		t.Fatalf("seed contact: %v", err)
	}
	return contact
}

func seedAddress(t *testing.T, st store.Stores, contactID int64) *models.Address {
	t.Helper()
	address := &models.Address{
		ContactID:  contactID,
		Street:     "test street",
		City:       "test city",
		Province:   "test province",
		Country:    "test country",
		PostalCode: "21213",
	}
	if err := st.Addresses.Create(context.Background(), address); err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return address
}

// seedSearchContacts creates n contacts named "first i"/"last i" with
// matching emails and phones, all owned by userID.
func seedSearchContacts(t *testing.T, st store.Stores, userID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		contact := &models.Contact{
			UserID:    userID,
			FirstName: fmt.Sprintf("first %d", i),
			LastName:  fmt.Sprintf("last %d", i),
			Email:     fmt.Sprintf("test%d@mail.com", i),
			Phone:     fmt.Sprintf("08987654321%d", i),
		}
		if err := st.Contacts.Create(context.Background(), contact); err != nil {
			t.Fatalf("seed search contact %d: %v", i, err)
		}
	}
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func dataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected object data field, got %q", w.Body.String())
	}
	return data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].([]any)
	if !ok {
		t.Fatalf("expected list data field, got %q", w.Body.String())
	}
	return data
}

func errorMessages(t *testing.T, w *httptest.ResponseRecorder, field string) []string {
	t.Helper()
	errs, ok := decodeBody(t, w)["errors"].(map[string]any)
	if !ok {
		t.Fatalf("expected errors field, got %q", w.Body.String())
	}
	raw, ok := errs[field].([]any)
	if !ok {
		t.Fatalf("expected errors.%s, got %q", field, w.Body.String())
	}
	messages := make([]string, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, m.(string))
	}
	return messages
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func assertErrorMessage(t *testing.T, w *httptest.ResponseRecorder, field, want string) {
	t.Helper()
	for _, msg := range errorMessages(t, w, field) {
		if msg == want {
			return
		}
	}
	t.Fatalf("expected errors.%s to contain %q, got %q", field, want, w.Body.String())
}

func assertNotFound(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assertStatus(t, w, 404)
	assertErrorMessage(t, w, "message", "not found")
}

func assertUnauthorized(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assertStatus(t, w, 401)
	assertErrorMessage(t, w, "message", "Unauthorized")
}

func pagination(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	meta, ok := decodeBody(t, w)["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected pagination field, got %q", w.Body.String())
	}
	return meta
}
