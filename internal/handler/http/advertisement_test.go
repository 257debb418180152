// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-adv-board/internal/service"
	"github.com/MKhiriev/go-adv-board/internal/store"
	"github.com/MKhiriev/go-adv-board/models"
)

const (
	advPath         = "/api/adv/"
	overflowingID   = "99999999999999999999"
	beyondInt32ID   = "2147483648"
	notFoundBody    = `{"status":"error","description":"Advertisement with this id not found."}`
	unauthorizedMsg = "Unauthorized"
)

var (
	owner    = models.User{ID: 1, Email: "a@x.com"}
	stranger = models.User{ID: 2, Email: "b@x.com"}
)

func ownedAdvertisement() models.Advertisement {
	return models.Advertisement{
		ID:      1,
		Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Title:   "Car",
		OwnerID: owner.ID,
	}
}

func unauthenticated() error {
	return fmt.Errorf("%w: wrong password", service.ErrUnauthenticated)
}

// ── POST /api/adv/ ───────────────────────────────────────────────────────────

func TestCreateAdvertisement_Success(t *testing.T) {
	tr := newTestRouter(t)
	description := "red"

	gomock.InOrder(
		tr.auth.EXPECT().Authenticate(gomock.Any(), basicAuth("a@x.com", "password1")).Return(owner, nil),
		tr.adv.EXPECT().CreateAdvertisement(gomock.Any(), owner, models.CreateAdvertisementRequest{
			Title:       "Car",
			Description: &description,
		}).Return(int64(7), nil),
	)

	rr := tr.do(http.MethodPost, advPath, `{"title":"Car","description":"red","owner_id":99}`, basicAuth("a@x.com", "password1"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":7}`, rr.Body.String())
}

func TestCreateAdvertisement_NoBodyBeforeAuth(t *testing.T) {
	tr := newTestRouter(t)

	rr := tr.do(http.MethodPost, advPath, "", "")

	assertErrorBody(t, rr, http.StatusBadRequest, "There is no JSON data in the request")
}

func TestCreateAdvertisement_AuthBeforeValidation(t *testing.T) {
	tr := newTestRouter(t)
	tr.auth.EXPECT().Authenticate(gomock.Any(), "").Return(models.User{}, unauthenticated())

	rr := tr.do(http.MethodPost, advPath, `{"title":5}`, "")

	assertErrorBody(t, rr, http.StatusUnauthorized, unauthorizedMsg)
	assert.Equal(t, `Basic realm="adv-board"`, rr.Header().Get("WWW-Authenticate"))
}

func TestCreateAdvertisement_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "missing title",
			body:     `{"description":"red"}`,
			wantBody: `[{"field":"title","message":"is required","type":"required"}]`,
		},
		{
			name:     "empty title",
			body:     `{"title":""}`,
			wantBody: `[{"field":"title","message":"is required","type":"required"}]`,
		},
		{
			name:     "title too long",
			body:     `{"title":"` + strings.Repeat("a", 51) + `"}`,
			wantBody: `[{"field":"title","message":"must not exceed 50 characters","type":"max"}]`,
		},
		{
			name:     "description of wrong type",
			body:     `{"title":"Car","description":5}`,
			wantBody: `[{"field":"description","message":"must be a string","type":"type_error"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t)
			tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)

			rr := tr.do(http.MethodPost, advPath, tt.body, basicAuth("a@x.com", "password1"))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestCreateAdvertisement_NullDescription(t *testing.T) {
	tr := newTestRouter(t)
	tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
	tr.adv.EXPECT().CreateAdvertisement(gomock.Any(), owner, models.CreateAdvertisementRequest{Title: "Car"}).
		Return(int64(1), nil)

	rr := tr.do(http.MethodPost, advPath, `{"title":"Car","description":null}`, basicAuth("a@x.com", "password1"))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

// ── GET /api/adv/{id} ────────────────────────────────────────────────────────

func TestGetAdvertisement_Success(t *testing.T) {
	tr := newTestRouter(t)
	tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(ownedAdvertisement(), nil)

	rr := tr.do(http.MethodGet, "/api/adv/1", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"id":1,"created":"2026-01-02T03:04:05Z","title":"Car","description":null,"owner_id":1}`,
		rr.Body.String())
}

func TestGetAdvertisement_NotFound(t *testing.T) {
	tr := newTestRouter(t)
	tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(42)).
		Return(models.Advertisement{}, store.ErrAdvertisementNotFound)

	rr := tr.do(http.MethodGet, "/api/adv/42", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, notFoundBody, rr.Body.String())
}

func TestGetAdvertisement_OverflowingID(t *testing.T) {
	tr := newTestRouter(t)

	rr := tr.do(http.MethodGet, "/api/adv/"+overflowingID, "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, notFoundBody, rr.Body.String())
}

func TestGetAdvertisement_IDBeyondInt32(t *testing.T) {
	tr := newTestRouter(t)
	tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(2147483648)).
		Return(models.Advertisement{}, store.ErrAdvertisementNotFound)

	rr := tr.do(http.MethodGet, "/api/adv/"+beyondInt32ID, "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, notFoundBody, rr.Body.String())
}

// ── PATCH /api/adv/{id} ──────────────────────────────────────────────────────

func TestUpdateAdvertisement_Success(t *testing.T) {
	tr := newTestRouter(t)
	adv := ownedAdvertisement()
	auth := basicAuth("a@x.com", "password1")

	gomock.InOrder(
		tr.auth.EXPECT().Authenticate(gomock.Any(), auth).Return(owner, nil),
		tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil),
		tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, owner).Return(nil),
		tr.adv.EXPECT().UpdateAdvertisement(gomock.Any(), int64(1), models.AdvertisementUpdate{
			Title:       models.NewOptionalString("Car2"),
			Description: models.NullString(),
		}).Return(nil),
	)

	rr := tr.do(http.MethodPatch, "/api/adv/1", `{"title":"Car2","description":null}`, auth)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestUpdateAdvertisement_CheckOrder(t *testing.T) {
	adv := ownedAdvertisement()
	auth := basicAuth("b@x.com", "password1")

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(tr *testRouter)
		wantStatus int
	}{
		{
			name:       "body is checked before credentials",
			target:     "/api/adv/1",
			body:       "{}",
			setup:      func(tr *testRouter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "credentials are checked before existence",
			target: "/api/adv/404",
			body:   `{"title":"Car2"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.User{}, unauthenticated())
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "credentials are checked before an overflowing id",
			target: "/api/adv/" + overflowingID,
			body:   `{"title":"Car2"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.User{}, unauthenticated())
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "existence is checked before ownership",
			target: "/api/adv/404",
			body:   `{"title":"Car2"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(stranger, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(404)).
					Return(models.Advertisement{}, store.ErrAdvertisementNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "overflowing id is not found",
			target: "/api/adv/" + overflowingID,
			body:   `{"title":"Car2"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(stranger, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "id beyond int32 is not found",
			target: "/api/adv/" + beyondInt32ID,
			body:   `{"title":"Car2"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(stranger, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(2147483648)).
					Return(models.Advertisement{}, store.ErrAdvertisementNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "ownership is checked before validation",
			target: "/api/adv/1",
			body:   `{"title":5}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(stranger, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, stranger).Return(service.ErrNotAdvertisementOwner)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "validation is checked before the store",
			target: "/api/adv/1",
			body:   `{"title":"` + strings.Repeat("a", 51) + `"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, owner).Return(nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "store conflict is a bad request",
			target: "/api/adv/1",
			body:   `{"title":null}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, owner).Return(nil)
				tr.adv.EXPECT().UpdateAdvertisement(gomock.Any(), int64(1), models.AdvertisementUpdate{Title: models.NullString()}).
					Return(fmt.Errorf("%w: not-null violation", store.ErrAdvertisementConflict))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "advertisement removed concurrently",
			target: "/api/adv/1",
			body:   `{"description":"blue"}`,
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, owner).Return(nil)
				tr.adv.EXPECT().UpdateAdvertisement(gomock.Any(), int64(1), gomock.Any()).
					Return(store.ErrAdvertisementNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t)
			tt.setup(tr)

			rr := tr.do(http.MethodPatch, tt.target, tt.body, auth)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── DELETE /api/adv/{id} ─────────────────────────────────────────────────────

func TestDeleteAdvertisement(t *testing.T) {
	adv := ownedAdvertisement()

	tests := []struct {
		name       string
		setup      func(tr *testRouter)
		wantStatus int
	}{
		{
			name: "owner deletes",
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, owner).Return(nil)
				tr.adv.EXPECT().DeleteAdvertisement(gomock.Any(), int64(1)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "unauthenticated",
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.User{}, unauthenticated())
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing",
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).
					Return(models.Advertisement{}, store.ErrAdvertisementNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "another owner",
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(stranger, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, stranger).Return(service.ErrNotAdvertisementOwner)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "deleted concurrently",
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).Return(adv, nil)
				tr.adv.EXPECT().CheckOwnership(gomock.Any(), adv, owner).Return(nil)
				tr.adv.EXPECT().DeleteAdvertisement(gomock.Any(), int64(1)).Return(store.ErrAdvertisementNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			setup: func(tr *testRouter) {
				tr.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(owner, nil)
				tr.adv.EXPECT().GetAdvertisement(gomock.Any(), int64(1)).
					Return(models.Advertisement{}, fmt.Errorf("%w: timeout", store.ErrExecutingQuery))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t)
			tt.setup(tr)

			rr := tr.do(http.MethodDelete, "/api/adv/1", "", basicAuth("a@x.com", "password1"))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
