package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"virtual-healthcare/models"
	"virtual-healthcare/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memory-backed repositories, enough to drive the credential handlers

type memCredRepo struct {
	records map[int]models.Credential
}

func (m *memCredRepo) FindAll(ctx context.Context) ([]models.Credential, error) {
	creds := make([]models.Credential, 0, len(m.records))
	for _, cred := range m.records {
		creds = append(creds, cred)
	}
	sort.Slice(creds, func(i, j int) bool { return creds[i].ID < creds[j].ID })
	return creds, nil
}

func (m *memCredRepo) FindByID(ctx context.Context, id int) (*models.Credential, error) {
	if cred, ok := m.records[id]; ok {
		return &cred, nil
	}
	return nil, nil
}

func (m *memCredRepo) FindByDoctorID(ctx context.Context, doctorID int) (*models.Credential, error) {
	for _, cred := range m.records {
		if cred.DoctorID == doctorID {
			cred := cred
			return &cred, nil
		}
	}
	return nil, nil
}

func (m *memCredRepo) FindByUsername(ctx context.Context, username string) (*models.Credential, error) {
	for _, cred := range m.records {
		if cred.Username == username {
			cred := cred
			return &cred, nil
		}
	}
	return nil, nil
}

func (m *memCredRepo) FindByUsernameExcluding(ctx context.Context, username string, excludeID int) (*models.Credential, error) {
	for _, cred := range m.records {
		if cred.Username == username && cred.ID != excludeID {
			cred := cred
			return &cred, nil
		}
	}
	return nil, nil
}

func (m *memCredRepo) MaxID(ctx context.Context) (int, error) {
	max := 0
	for id := range m.records {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (m *memCredRepo) Create(ctx context.Context, cred *models.Credential) error {
	m.records[cred.ID] = *cred
	return nil
}

func (m *memCredRepo) Save(ctx context.Context, cred *models.Credential) error {
	m.records[cred.ID] = *cred
	return nil
}

func (m *memCredRepo) Delete(ctx context.Context, id int) error {
	delete(m.records, id)
	return nil
}

func (m *memCredRepo) DeleteAll(ctx context.Context) error {
	m.records = make(map[int]models.Credential)
	return nil
}

type memRoster struct {
	doctors map[int]models.Doctor
}

func (m *memRoster) FindByID(ctx context.Context, id int) (*models.Doctor, error) {
	if doctor, ok := m.doctors[id]; ok {
		return &doctor, nil
	}
	return nil, nil
}

func (m *memRoster) FindAllSorted(ctx context.Context) ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		doctors = append(doctors, d)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}

func setupCredentialRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memCredRepo{records: make(map[int]models.Credential)}
	roster := &memRoster{doctors: map[int]models.Doctor{
		1: {ID: 1, Name: "Dr. Sarah Haider"},
		2: {ID: 2, Name: "Dr. Mustafa Hassan"},
	}}
	Init(services.NewCredentialService(repo, roster))

	r := gin.New()
	r.GET("/credentials", GetAllCredentials)
	r.GET("/credentials/:id", GetCredentialsByID)
	r.GET("/credentials/doctor/:doctorId", GetCredentialsByDoctorID)
	r.POST("/credentials", CreateCredentials)
	r.PUT("/credentials/:id", UpdateCredentials)
	r.DELETE("/credentials/:id", DeleteCredentials)
	r.POST("/credentials/verify-login", VerifyLogin)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCredentialsEnvelope(t *testing.T) {
	r := setupCredentialRouter(t)

	w := doJSON(r, http.MethodPost, "/credentials", `{"doctorId":1,"username":"Dr.Sarah","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID          int    `json:"id"`
			DoctorID    int    `json:"doctorId"`
			DoctorName  string `json:"doctorName"`
			Username    string `json:"username"`
			HasPassword bool   `json:"hasPassword"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.ID)
	assert.Equal(t, "dr.sarah", resp.Data.Username)
	assert.Equal(t, "Dr. Sarah Haider", resp.Data.DoctorName)
	assert.True(t, resp.Data.HasPassword)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestCreateCredentialsConflictAndNotFound(t *testing.T) {
	r := setupCredentialRouter(t)

	w := doJSON(r, http.MethodPost, "/credentials", `{"doctorId":1,"username":"dr.sarah","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// same doctor again
	w = doJSON(r, http.MethodPost, "/credentials", `{"doctorId":1,"username":"dr.other","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// same username, different doctor
	w = doJSON(r, http.MethodPost, "/credentials", `{"doctorId":2,"username":"Dr.Sarah","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown doctor
	w = doJSON(r, http.MethodPost, "/credentials", `{"doctorId":99,"username":"dr.nobody","password":"secret"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing fields
	w = doJSON(r, http.MethodPost, "/credentials", `{"doctorId":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyLoginStatusCodes(t *testing.T) {
	r := setupCredentialRouter(t)

	w := doJSON(r, http.MethodPost, "/credentials", `{"doctorId":1,"username":"dr.sarah","password":"rightpass"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/credentials/verify-login", `{"username":"dr.sarah","password":"rightpass"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var ok struct {
		Success bool `json:"success"`
		Data    struct {
			DoctorID   int    `json:"doctorId"`
			DoctorName string `json:"doctorName"`
		} `json:"data"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.True(t, ok.Success)
	assert.Equal(t, 1, ok.Data.DoctorID)
	assert.NotEmpty(t, ok.Token)

	// wrong password and unknown user read identically
	wrongPass := doJSON(r, http.MethodPost, "/credentials/verify-login", `{"username":"dr.sarah","password":"wrong"}`)
	noUser := doJSON(r, http.MethodPost, "/credentials/verify-login", `{"username":"nouser","password":"anything"}`)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.JSONEq(t, wrongPass.Body.String(), noUser.Body.String())

	// missing fields
	w = doJSON(r, http.MethodPost, "/credentials/verify-login", `{"username":"dr.sarah"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeleteCredentials(t *testing.T) {
	r := setupCredentialRouter(t)

	w := doJSON(r, http.MethodPost, "/credentials", `{"doctorId":1,"username":"dr.sarah","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/credentials", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	assert.Len(t, list.Data, 1)

	w = doJSON(r, http.MethodGet, "/credentials/doctor/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, "/credentials/doctor/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/credentials/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodDelete, "/credentials/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, http.MethodGet, "/credentials/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCredentialsPartial(t *testing.T) {
	r := setupCredentialRouter(t)

	w := doJSON(r, http.MethodPost, "/credentials", `{"doctorId":1,"username":"dr.sarah","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPut, "/credentials/1", `{"username":"dr.haider"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dr.haider")

	// old password still valid after a username-only update
	w = doJSON(r, http.MethodPost, "/credentials/verify-login", `{"username":"dr.haider","password":"secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/credentials/99", `{"username":"dr.ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
