package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/admin-cli/internal/models"
)

func TestCreateMultipartEncodesFieldsAndFile(t *testing.T) {
	image := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(image, []byte("png-bytes"), 0600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "Spice Villa", r.FormValue("name"))
		require.Equal(t, "Downtown", r.FormValue("area"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "cover.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "png-bytes", string(content))

		w.Write([]byte(`{"data":{"_id":"r1","name":"Spice Villa"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	restaurant, err := CreateMultipart[models.Restaurant](context.Background(), client, "restaurants",
		map[string]string{"name": "Spice Villa", "area": "Downtown"},
		map[string]string{"image": image},
	)
	require.NoError(t, err)
	require.Equal(t, "r1", restaurant.ID)
}

func TestCreateMultipartSkipsEmptyFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, present := r.MultipartForm.Value["cuisine"]
		require.False(t, present)
		w.Write([]byte(`{"data":{"_id":"r1"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	_, err := CreateMultipart[models.Restaurant](context.Background(), client, "restaurants",
		map[string]string{"name": "Spice Villa", "cuisine": ""},
		nil,
	)
	require.NoError(t, err)
}

func TestCreateMultipartMissingFile(t *testing.T) {
	client := NewClient("http://localhost:0", loggedIn())
	_, err := CreateMultipart[models.Restaurant](context.Background(), client, "restaurants",
		map[string]string{"name": "Spice Villa"},
		map[string]string{"image": filepath.Join(t.TempDir(), "missing.png")},
	)
	require.Error(t, err)
}
