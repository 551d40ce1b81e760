package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sacco-desk/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestLoginSendsNoCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "feven", body["username"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "issued-token",
			"user":  domain.UserProfile{ID: 5, Username: "feven", Role: domain.RoleCustomer},
		})
	})

	result, err := client.Login(context.Background(), "feven", "secret")
	require.NoError(t, err)
	require.Equal(t, "issued-token", result.Token)
	require.Equal(t, uint(5), result.User.ID)
}

func TestBearerHeaderOnAuthenticatedCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(domain.UserProfile{ID: 1})
	})

	_, err := client.Me(context.Background(), "tok")
	require.NoError(t, err)
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		status  int
		message string
		wantErr error
	}{
		{http.StatusUnauthorized, "Invalid credentials", domain.ErrUnauthorized},
		{http.StatusForbidden, "Insufficient role", domain.ErrForbidden},
		{http.StatusNotFound, "Transaction not found", domain.ErrNotFound},
	}

	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(map[string]string{"message": tc.message})
		})

		_, err := client.Me(context.Background(), "tok")
		require.ErrorIs(t, err, tc.wantErr, "status %d", tc.status)
		require.EqualError(t, err, tc.message)
	}
}

func TestValidationErrorKeepsFieldMap(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "The given data was invalid.",
			"errors": map[string][]string{
				"amount": {"The amount must be a positive number."},
			},
		})
	})

	err := client.ChangePassword(context.Background(), "tok", "old", "new")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "The given data was invalid.", verr.Message)
	require.Equal(t, []string{"The amount must be a positive number."}, verr.Fields["amount"])
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Me(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestUploadBuildsMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("profile_picture")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "avatar.png", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte{0x89, 0x50}, data)

		json.NewEncoder(w).Encode(map[string]string{"profile_picture": "uploads/abc.png"})
	})

	ref, err := client.UploadProfilePicture(context.Background(), "tok", "avatar.png", []byte{0x89, 0x50})
	require.NoError(t, err)
	require.Equal(t, "uploads/abc.png", ref)
}

func TestSubmitMoneyRequestPathPerType(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"transaction": domain.Transaction{ID: 1},
		})
	})

	paths := map[string]string{
		domain.TxDeposit:       "/deposit",
		domain.TxWithdrawal:    "/withdraw",
		domain.TxLoan:          "/apply-loan",
		domain.TxLoanRepayment: "/loan",
	}
	for txType, want := range paths {
		_, err := client.SubmitMoneyRequest(context.Background(), "tok", domain.MoneyRequest{Type: txType, Amount: 10})
		require.NoError(t, err)
		require.Equal(t, want, gotPath, "type %q", txType)
	}

	_, err := client.SubmitMoneyRequest(context.Background(), "tok", domain.MoneyRequest{Type: "transfer", Amount: 10})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
