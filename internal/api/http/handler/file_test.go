package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/files-manager/internal/api/http/context"
	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/service"
	"github.com/dtroode/files-manager/internal/testutil"
)

func newFileHandler(t *testing.T) (*File, *fileServiceMock, *contentServiceMock) {
	t.Helper()
	files := newFileServiceMock(t)
	content := newContentServiceMock(t)
	return NewFile(files, content, httpctx.NewManager(), testutil.MakeNoopLogger()), files, content
}

func TestParseParent(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name   string
		raw    any
		want   model.Parent
		wantOK bool
	}{
		{name: "absent", raw: nil, want: model.RootParent(), wantOK: true},
		{name: "zero number", raw: float64(0), want: model.RootParent(), wantOK: true},
		{name: "zero string", raw: "0", want: model.RootParent(), wantOK: true},
		{name: "root string", raw: "root", want: model.RootParent(), wantOK: true},
		{name: "folder id", raw: id.String(), want: model.ParentOf(id), wantOK: true},
		{name: "other number", raw: float64(7), wantOK: false},
		{name: "garbage", raw: "folder-1", wantOK: false},
		{name: "bool", raw: true, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseParent(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFile_Upload(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	parentID := uuid.New()
	created := model.File{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      "image.png",
		Type:      model.FileTypeImage,
		Parent:    model.ParentOf(parentID),
		IsPublic:  true,
		LocalPath: "/tmp/files_manager/secret",
	}

	h, files, _ := newFileHandler(t)
	files.On("Upload", mock.Anything, owner, service.UploadParams{
		Name:     "image.png",
		Type:     "image",
		Parent:   model.ParentOf(parentID),
		IsPublic: true,
		Data:     "aGVsbG8=",
	}).Return(created, nil)

	body := `{"name":"image.png","type":"image","parentId":"` + parentID.String() + `","isPublic":true,"data":"aGVsbG8="}`
	rec := serve(http.MethodPost, "/files", "/files", body, owner, h.Upload, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id":"`+created.ID.String()+`",
		"userId":"`+owner.String()+`",
		"name":"image.png",
		"type":"image",
		"isPublic":true,
		"parentId":"`+parentID.String()+`"
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "localPath")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestFile_Upload_RootFolder(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	created := model.File{ID: uuid.New(), OwnerID: owner, Name: "docs", Type: model.FileTypeFolder, Parent: model.RootParent()}

	h, files, _ := newFileHandler(t)
	files.On("Upload", mock.Anything, owner, service.UploadParams{
		Name:   "docs",
		Type:   "folder",
		Parent: model.RootParent(),
	}).Return(created, nil)

	rec := serve(http.MethodPost, "/files", "/files", `{"name":"docs","type":"folder","parentId":0}`, owner, h.Upload, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id":"`+created.ID.String()+`",
		"userId":"`+owner.String()+`",
		"name":"docs",
		"type":"folder",
		"isPublic":false,
		"parentId":0
	}`, rec.Body.String())
}

func TestFile_Upload_UnparseableParent(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	h, files, _ := newFileHandler(t)
	files.On("Upload", mock.Anything, owner, service.UploadParams{
		Name:   "docs",
		Type:   "folder",
		Parent: model.ParentOf(uuid.Nil),
	}).Return(model.File{}, apierrors.NewErrParentNotFound())

	rec := serve(http.MethodPost, "/files", "/files", `{"name":"docs","type":"folder","parentId":"nope"}`, owner, h.Upload, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Parent not found"}`, rec.Body.String())
}

func TestFile_Upload_ValidationError(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	h, files, _ := newFileHandler(t)
	files.On("Upload", mock.Anything, owner, service.UploadParams{Type: "file"}).Return(model.File{}, apierrors.NewErrMissing("name"))

	rec := serve(http.MethodPost, "/files", "/files", `{"type":"file"}`, owner, h.Upload, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing name"}`, rec.Body.String())
}

func TestFile_Upload_Anonymous(t *testing.T) {
	t.Parallel()

	h, _, _ := newFileHandler(t)
	rec := serve(http.MethodPost, "/files", "/files", `{"name":"x"}`, uuid.Nil, h.Upload, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFile_Show(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	file := model.File{ID: uuid.New(), OwnerID: owner, Name: "a.txt", Type: model.FileTypeFile}

	h, files, _ := newFileHandler(t)
	files.On("GetByID", mock.Anything, owner, file.ID).Return(file, nil)

	rec := serve(http.MethodGet, "/files/:id", "/files/"+file.ID.String(), "", owner, h.Show, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"a.txt"`)
}

func TestFile_Show_NotFound(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	fileID := uuid.New()

	h, files, _ := newFileHandler(t)
	files.On("GetByID", mock.Anything, owner, fileID).Return(model.File{}, apierrors.NewErrNotFound())

	rec := serve(http.MethodGet, "/files/:id", "/files/"+fileID.String(), "", owner, h.Show, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())

	rec = serve(http.MethodGet, "/files/:id", "/files/not-an-id", "", owner, h.Show, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFile_Index(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	parentID := uuid.New()
	listed := []model.File{
		{ID: uuid.New(), OwnerID: owner, Name: "b", Type: model.FileTypeFile, Parent: model.ParentOf(parentID)},
		{ID: uuid.New(), OwnerID: owner, Name: "a", Type: model.FileTypeFile, Parent: model.ParentOf(parentID)},
	}

	tests := []struct {
		name    string
		target  string
		parent  model.Parent
		page    int
		result  []model.File
		wantLen int
	}{
		{name: "root default page", target: "/files", parent: model.RootParent(), page: 0, wantLen: 0},
		{name: "root by zero", target: "/files?parentId=0&page=2", parent: model.RootParent(), page: 2, wantLen: 0},
		{name: "folder", target: "/files?parentId=" + parentID.String() + "&page=1", parent: model.ParentOf(parentID), page: 1, result: listed, wantLen: 2},
		{name: "bad page", target: "/files?page=abc", parent: model.RootParent(), page: 0, wantLen: 0},
		{name: "page beyond int", target: "/files?page=99999999999999999999999", parent: model.RootParent(), page: math.MaxInt, wantLen: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, files, _ := newFileHandler(t)
			files.On("List", mock.Anything, owner, tt.parent, tt.page).Return(tt.result, nil)

			rec := serve(http.MethodGet, "/files", tt.target, "", owner, h.Index, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tt.wantLen)
			assert.NotNil(t, got)
		})
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, parsePage(""))
	assert.Equal(t, 0, parsePage("abc"))
	assert.Equal(t, 3, parsePage("3"))
	assert.Equal(t, -2, parsePage("-2"))
	assert.Equal(t, math.MaxInt, parsePage("99999999999999999999999"))
	assert.Equal(t, 0, parsePage("-99999999999999999999999"))
}

func TestFile_Index_UnparseableParent(t *testing.T) {
	t.Parallel()

	h, _, _ := newFileHandler(t)
	rec := serve(http.MethodGet, "/files", "/files?parentId=xyz", "", uuid.New(), h.Index, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFile_PublishUnpublish(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	fileID := uuid.New()

	tests := []struct {
		name   string
		public bool
	}{
		{name: "publish", public: true},
		{name: "unpublish", public: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, files, _ := newFileHandler(t)
			files.On("SetVisibility", mock.Anything, owner, fileID, tt.public).
				Return(model.File{ID: fileID, OwnerID: owner, Name: "f", Type: model.FileTypeFile, IsPublic: tt.public}, nil)

			handler := h.Unpublish
			if tt.public {
				handler = h.Publish
			}
			rec := serve(http.MethodPut, "/files/:id/"+tt.name, "/files/"+fileID.String()+"/"+tt.name, "", owner, handler, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tt.public {
				assert.Contains(t, rec.Body.String(), `"isPublic":true`)
			} else {
				assert.Contains(t, rec.Body.String(), `"isPublic":false`)
			}
		})
	}
}

func TestFile_Publish_NotFound(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	fileID := uuid.New()

	h, files, _ := newFileHandler(t)
	files.On("SetVisibility", mock.Anything, owner, fileID, true).Return(model.File{}, model.ErrNotFound)

	rec := serve(http.MethodPut, "/files/:id/publish", "/files/"+fileID.String()+"/publish", "", owner, h.Publish, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFile_Data(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	fileID := uuid.New()

	h, _, content := newFileHandler(t)
	content.On("Fetch", mock.Anything, owner, fileID, "250").
		Return(model.Content{Data: []byte("thumb"), ContentType: "image/png"}, nil)

	rec := serve(http.MethodGet, "/files/:id/data", "/files/"+fileID.String()+"/data?size=250", "", owner, h.Data, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "thumb", rec.Body.String())
}

func TestFile_Data_Anonymous(t *testing.T) {
	t.Parallel()

	fileID := uuid.New()

	h, _, content := newFileHandler(t)
	content.On("Fetch", mock.Anything, uuid.Nil, fileID, "").Return(model.Content{}, apierrors.NewErrNotFound())

	rec := serve(http.MethodGet, "/files/:id/data", "/files/"+fileID.String()+"/data", "", uuid.Nil, h.Data, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestFile_Data_Folder(t *testing.T) {
	t.Parallel()

	fileID := uuid.New()

	h, _, content := newFileHandler(t)
	content.On("Fetch", mock.Anything, uuid.Nil, fileID, "").Return(model.Content{}, apierrors.NewErrFolderHasNoContent())

	rec := serve(http.MethodGet, "/files/:id/data", "/files/"+fileID.String()+"/data", "", uuid.Nil, h.Data, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"A folder doesn't have content"}`, rec.Body.String())
}
