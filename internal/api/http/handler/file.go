package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/service"
)

// FileService manages the file hierarchy of a user.
type FileService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, params service.UploadParams) (model.File, error)
	SetVisibility(ctx context.Context, ownerID, fileID uuid.UUID, public bool) (model.File, error)
	GetByID(ctx context.Context, ownerID, fileID uuid.UUID) (model.File, error)
	List(ctx context.Context, ownerID uuid.UUID, parent model.Parent, page int) ([]model.File, error)
}

// ContentService serves file bytes.
type ContentService interface {
	Fetch(ctx context.Context, requester uuid.UUID, fileID uuid.UUID, size string) (model.Content, error)
}

// File handles /files routes.
type File struct {
	fileService    FileService
	contentService ContentService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewFile creates a new File handler.
func NewFile(fileService FileService, contentService ContentService, contextManager model.ContextManager, logger *logger.Logger) *File {
	return &File{
		fileService:    fileService,
		contentService: contentService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID any    `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

type fileResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID any    `json:"parentId"`
}

// rootParentID is how the root parent is rendered to clients.
const rootParentID = 0

func newFileResponse(f model.File) fileResponse {
	var parentID any = rootParentID
	if id, ok := f.Parent.ID(); ok {
		parentID = id.String()
	}

	return fileResponse{
		ID:       f.ID.String(),
		UserID:   f.OwnerID.String(),
		Name:     f.Name,
		Type:     string(f.Type),
		IsPublic: f.IsPublic,
		ParentID: parentID,
	}
}

// parseParent accepts absent, 0, "0", "root" or a folder id.
func parseParent(raw any) (model.Parent, bool) {
	switch v := raw.(type) {
	case nil:
		return model.RootParent(), true
	case float64:
		if v == rootParentID {
			return model.RootParent(), true
		}
	case string:
		return parseParentString(v)
	}
	return model.Parent{}, false
}

func parseParentString(s string) (model.Parent, bool) {
	switch s {
	case "", "0", "root":
		return model.RootParent(), true
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return model.Parent{}, false
	}
	return model.ParentOf(id), true
}

// Upload creates a folder, file or image.
func (h *File) Upload(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req uploadRequest
	_ = c.ShouldBindJSON(&req)

	parent, ok := parseParent(req.ParentID)
	if !ok {
		// No folder has the nil id, so the service reports the parent as missing
		// after the field checks.
		parent = model.ParentOf(uuid.Nil)
	}

	file, err := h.fileService.Upload(c.Request.Context(), userID, service.UploadParams{
		Name:     req.Name,
		Type:     req.Type,
		Parent:   parent,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, newFileResponse(file))
}

// Show returns one file of the authenticated user.
func (h *File) Show(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, apierrors.NewErrNotFound())
		return
	}

	file, err := h.fileService.GetByID(c.Request.Context(), userID, fileID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newFileResponse(file))
}

// Index lists one page of files under parentId.
func (h *File) Index(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items := make([]fileResponse, 0, model.PageSize)

	parent, ok := parseParentString(c.Query("parentId"))
	if !ok {
		c.JSON(http.StatusOK, items)
		return
	}

	page := parsePage(c.Query("page"))

	files, err := h.fileService.List(c.Request.Context(), userID, parent, page)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	for _, f := range files {
		items = append(items, newFileResponse(f))
	}

	c.JSON(http.StatusOK, items)
}

// Publish makes a file public.
func (h *File) Publish(c *gin.Context) {
	h.setVisibility(c, true)
}

// Unpublish makes a file private.
func (h *File) Unpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *File) setVisibility(c *gin.Context, public bool) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, apierrors.NewErrNotFound())
		return
	}

	file, err := h.fileService.SetVisibility(c.Request.Context(), userID, fileID, public)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newFileResponse(file))
}

// Data streams file content. Anonymous callers only see public files.
func (h *File) Data(c *gin.Context) {
	requester, _ := h.contextManager.GetUserIDFromContext(c.Request.Context())

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, apierrors.NewErrNotFound())
		return
	}

	content, err := h.contentService.Fetch(c.Request.Context(), requester, fileID, c.Query("size"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Data(http.StatusOK, content.ContentType, content.Data)
}

// parsePage reads a page number. Garbage means the first page and numbers
// too large for int saturate at math.MaxInt.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err == nil {
		return page
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	return 0
}

func (h *File) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, apierrors.NewErrUnauthenticated())
		return uuid.Nil, false
	}
	return userID, true
}
