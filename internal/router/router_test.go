package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-api/internal/adapters/objects/local"
	mem "petcare-api/internal/adapters/storage/memory"
	"petcare-api/internal/router"
)

func TestHTTP_Tasks_CreateGetUpdateDelete(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear: completed default false
	created := map[string]any{}
	{
		st, body := doReq(t, ts.URL, "POST", "/tasks", map[string]any{
			"id":       "t1",
			"title":    "Walk dog",
			"time":     "08:00",
			"type":     "walk",
			"petName":  "Rex",
			"priority": "high",
			"date":     "2024-01-01",
		})
		require.Equal(t, http.StatusOK, st, string(body))
		require.NoError(t, json.Unmarshal(body, &created))
		assert.Equal(t, false, created["completed"])
		assert.Nil(t, created["description"])
		assert.Contains(t, created, "description")
	}

	// 2) GET devuelve el mismo objeto
	{
		st, body := doReq(t, ts.URL, "GET", "/tasks/t1", nil)
		require.Equal(t, http.StatusOK, st, string(body))
		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, created, got)
	}

	// 3) PUT reemplaza el documento completo
	{
		st, body := doReq(t, ts.URL, "PUT", "/tasks/t1", map[string]any{
			"id":        "t1",
			"title":     "Evening walk",
			"time":      "19:00",
			"type":      "walk",
			"petName":   "Rex",
			"priority":  "low",
			"date":      "2024-01-02",
			"completed": true,
		})
		require.Equal(t, http.StatusOK, st, string(body))

		st, body = doReq(t, ts.URL, "GET", "/tasks/t1", nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{
			"id":"t1","title":"Evening walk","description":null,"time":"19:00","type":"walk",
			"petName":"Rex","completed":true,"priority":"low","date":"2024-01-02"
		}`, string(body))
	}

	// 4) Borrar y verificar 404
	{
		st, body := doReq(t, ts.URL, "DELETE", "/tasks/t1", nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `{"ok":true}`, string(body))

		st, body = doReq(t, ts.URL, "GET", "/tasks/t1", nil)
		assert.Equal(t, http.StatusNotFound, st)
		assert.JSONEq(t, `{"detail":"Task not found"}`, string(body))
	}
}

func TestHTTP_Tasks_UpdateMissingCreatesIt(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "PUT", "/tasks/new", map[string]any{
		"id": "other", "title": "Feed", "time": "07:00", "type": "food",
		"petName": "Milo", "priority": "high", "date": "2024-03-01",
	})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Contains(t, string(body), `"id":"other"`)

	// Se guarda bajo el id del path con el body tal cual
	st, body = doReq(t, ts.URL, "GET", "/tasks/new", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"id":"other"`)

	st, _ = doReq(t, ts.URL, "GET", "/tasks/other", nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_Tasks_IDsAreNotTrimmed(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, tc := range []struct{ id, title string }{{"t1", "first"}, {"t1 ", "second"}} {
		st, body := doReq(t, ts.URL, "POST", "/tasks", map[string]any{
			"id": tc.id, "title": tc.title, "time": "08:00", "type": "walk",
			"petName": "Rex", "priority": "high", "date": "2024-01-01",
		})
		require.Equal(t, http.StatusOK, st, string(body))
	}

	st, body := doReq(t, ts.URL, "GET", "/tasks", nil)
	require.Equal(t, http.StatusOK, st)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 2)

	st, body = doReq(t, ts.URL, "GET", "/tasks/t1", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"id":"t1"`)
	assert.Contains(t, string(body), `"title":"first"`)

	st, body = doReq(t, ts.URL, "GET", "/tasks/t1%20", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"title":"second"`)
}

func TestHTTP_Tasks_ValidationErrors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Falta title
	st, body := doReq(t, ts.URL, "POST", "/tasks", map[string]any{
		"id": "t1", "time": "08:00", "type": "walk", "petName": "Rex", "priority": "high", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusUnprocessableEntity, st)

	var resp struct {
		Detail []struct {
			Loc  []string `json:"loc"`
			Type string   `json:"type"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, []string{"body", "title"}, resp.Detail[0].Loc)
	assert.Equal(t, "value_error.missing", resp.Detail[0].Type)

	// JSON roto
	st, _ = doRaw(t, ts.URL, "POST", "/tasks", "application/json", strings.NewReader(`{"id":`))
	assert.Equal(t, http.StatusUnprocessableEntity, st)

	// Nada se escribió
	st, body = doReq(t, ts.URL, "GET", "/tasks", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHTTP_Health_ValueAsStringAndNumber(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/health", map[string]any{
		"id": "h1", "pet_id": "p1", "metric": "weight", "value": "12.5", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.JSONEq(t, `{"id":"h1","pet_id":"p1","metric":"weight","value":12.5,"date":"2024-01-01"}`, string(body))

	st, body = doReq(t, ts.URL, "POST", "/health", map[string]any{
		"id": "h2", "pet_id": "p1", "metric": "temp", "value": 38, "date": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, st, string(body))

	st, _ = doReq(t, ts.URL, "POST", "/health", map[string]any{
		"id": "h3", "pet_id": "p1", "metric": "temp", "value": "hot", "date": "2024-01-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, st)

	st, body = doReq(t, ts.URL, "GET", "/health/h1", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"value":12.5`)

	st, body = doReq(t, ts.URL, "GET", "/health/h3", nil)
	assert.Equal(t, http.StatusNotFound, st)
	assert.JSONEq(t, `{"detail":"Health metric not found"}`, string(body))
}

func TestHTTP_Users_CreateListDelete(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/users", map[string]any{
		"id": "u1", "username": "ana", "email": "ana@example.com",
	})
	require.Equal(t, http.StatusOK, st, string(body))
	assert.JSONEq(t, `{"id":"u1","username":"ana","email":"ana@example.com","plan":null}`, string(body))

	st, _ = doReq(t, ts.URL, "POST", "/users", map[string]any{
		"id": "u2", "username": "beto", "email": "beto@example.com", "plan": "premium",
	})
	require.Equal(t, http.StatusOK, st)

	st, body = doReq(t, ts.URL, "GET", "/users", nil)
	require.Equal(t, http.StatusOK, st)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 2)

	st, _ = doReq(t, ts.URL, "DELETE", "/users/u1", nil)
	require.Equal(t, http.StatusOK, st)

	st, body = doReq(t, ts.URL, "GET", "/users/u1", nil)
	assert.Equal(t, http.StatusNotFound, st)
	assert.JSONEq(t, `{"detail":"User not found"}`, string(body))
}

func TestHTTP_DeleteNeverCreated_IsOK(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, p := range []string{"/pets/nope", "/tasks/nope", "/health/nope", "/users/nope"} {
		st, body := doReq(t, ts.URL, "DELETE", p, nil)
		assert.Equal(t, http.StatusOK, st, p)
		assert.JSONEq(t, `{"ok":true}`, string(body), p)
	}
}

func TestHTTP_List_ReturnsExactlyN(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	const n = 5
	want := map[string]bool{}
	for i := 0; i < n; i++ {
		id := createPet(t, ts.URL, url.Values{
			"name": {"Pet"}, "species": {"cat"}, "breed": {"siamese"}, "age": {"1"},
		})
		want[id] = true
	}

	st, body := doReq(t, ts.URL, "GET", "/pets", nil)
	require.Equal(t, http.StatusOK, st)

	var list []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, n)
	for _, p := range list {
		assert.True(t, want[p.ID], "unexpected id %s", p.ID)
	}
}

func TestHTTP_Pets_CreateWithoutImage(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	notes := "friendly"
	id := createPet(t, ts.URL, url.Values{
		"name": {"Rex"}, "species": {"dog"}, "breed": {"labrador"}, "age": {"3"}, "notes": {notes},
	})

	st, body := doReq(t, ts.URL, "GET", "/pets/"+id, nil)
	require.Equal(t, http.StatusOK, st)

	var p map[string]any
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, id, p["id"])
	assert.Nil(t, p["avatar"])
	assert.Equal(t, notes, p["notes"])

	st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+id, nil)
	require.Equal(t, http.StatusOK, st)

	st, body = doReq(t, ts.URL, "GET", "/pets/"+id, nil)
	assert.Equal(t, http.StatusNotFound, st)
	assert.JSONEq(t, `{"detail":"Pet not found"}`, string(body))
}

func TestHTTP_Pets_CreateWithImage(t *testing.T) {
	// El base URL del store depende del server, así que el handler se arma después.
	var h http.Handler
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}))
	defer ts.Close()

	media := local.New(t.TempDir(), ts.URL+"/media")
	h = router.NewRouter(router.Options{Objects: media, Media: media.Handler()})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Rex", "species": "dog", "breed": "labrador", "age": "3"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", "rex.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("PNGDATA"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	st, body := doRaw(t, ts.URL, "POST", "/pets", mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusCreated, st, string(body))

	var created struct {
		ID     string  `json:"id"`
		Avatar *string `json:"avatar"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotNil(t, created.Avatar)
	assert.Equal(t, ts.URL+"/media/pets/"+created.ID+"/rex.png", *created.Avatar)

	// El documento guardado tiene la misma URL
	st, body = doReq(t, ts.URL, "GET", "/pets/"+created.ID, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"avatar":"`+*created.Avatar+`"`)

	// Y la URL es alcanzable
	res, err := http.Get(*created.Avatar)
	require.NoError(t, err)
	defer res.Body.Close()
	img, _ := io.ReadAll(res.Body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "PNGDATA", string(img))
}

func TestHTTP_Pets_ImageWithoutObjectStore_Is500(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Rex", "species": "dog", "breed": "labrador", "age": "3"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", "rex.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("PNG"))
	require.NoError(t, mw.Close())

	st, body := doRaw(t, ts.URL, "POST", "/pets", mw.FormDataContentType(), &buf)
	assert.Equal(t, http.StatusInternalServerError, st)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, string(body))

	st, body = doReq(t, ts.URL, "GET", "/pets", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHTTP_Pets_MissingFormField_Is422(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	form := url.Values{"name": {"Rex"}, "species": {"dog"}, "breed": {"labrador"}}
	st, body := doRaw(t, ts.URL, "POST", "/pets", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Contains(t, string(body), `"age"`)
}

func TestHTTP_Pets_EmptyFormFields(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// name vacío cuenta como faltante
	form := url.Values{"name": {""}, "species": {"dog"}, "breed": {"lab"}, "age": {"3"}}
	st, body := doRaw(t, ts.URL, "POST", "/pets", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.Equal(t, http.StatusUnprocessableEntity, st, string(body))

	var resp struct {
		Detail []struct {
			Loc  []string `json:"loc"`
			Msg  string   `json:"msg"`
			Type string   `json:"type"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, []string{"body", "name"}, resp.Detail[0].Loc)
	assert.Equal(t, "field required", resp.Detail[0].Msg)

	// notes vacío queda en null
	id := createPet(t, ts.URL, url.Values{
		"name": {"Rex"}, "species": {"dog"}, "breed": {"lab"}, "age": {"3"}, "notes": {""},
	})
	st, body = doReq(t, ts.URL, "GET", "/pets/"+id, nil)
	require.Equal(t, http.StatusOK, st)

	var p map[string]any
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Contains(t, p, "notes")
	assert.Nil(t, p["notes"])
}

func TestHTTP_StoreFailure_Is500(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Documents: brokenStore{}}))
	defer ts.Close()

	for _, p := range []string{"/pets", "/tasks", "/health", "/users", "/users/u1"} {
		st, body := doReq(t, ts.URL, "GET", p, nil)
		assert.Equal(t, http.StatusInternalServerError, st, p)
		assert.JSONEq(t, `{"detail":"Internal Server Error"}`, string(body), p)
	}
}

func TestHTTP_HealthzAndRequestID(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Documents: mem.NewStore()}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.NotEmpty(t, res.Header.Get("X-Request-Id"))
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"/tasks/{taskID}"`)
}

// -------------------------
// Helpers
// -------------------------

type brokenStore struct{}

var errBroken = errors.New("store unavailable")

func (brokenStore) Set(context.Context, string, string, []byte) error { return errBroken }
func (brokenStore) Get(context.Context, string, string) ([]byte, error) { return nil, errBroken }
func (brokenStore) Delete(context.Context, string, string) error { return errBroken }
func (brokenStore) List(context.Context, string) ([][]byte, error) { return nil, errBroken }

func createPet(t *testing.T, baseURL string, form url.Values) string {
	t.Helper()

	st, body := doRaw(t, baseURL, "POST", "/pets", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal create pet: %v body=%s", err, string(body))
	}
	if resp.ID == "" {
		t.Fatalf("empty pet id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
		contentType = "application/json"
	}
	return doRaw(t, baseURL, method, path, contentType, rdr)
}

func doRaw(t *testing.T, baseURL, method, path, contentType string, body io.Reader) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
