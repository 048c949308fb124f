package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// ResearchHandlers handles the research paper bulletin board.
type ResearchHandlers struct {
	paperSvc domain.PaperService
}

// NewResearchHandlers creates new research handlers
func NewResearchHandlers(paperSvc domain.PaperService) *ResearchHandlers {
	return &ResearchHandlers{paperSvc: paperSvc}
}

// List handles GET /api/research with an optional authorId filter.
func (h *ResearchHandlers) List(c *gin.Context) {
	papers, err := h.paperSvc.List(c.Request.Context(), c.Query("authorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching papers"})
		return
	}
	c.JSON(http.StatusOK, papers)
}

// Upload handles POST /api/research/upload (multipart form).
func (h *ResearchHandlers) Upload(c *gin.Context) {
	title := c.PostForm("title")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and file are required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
		return
	}
	defer f.Close()

	callerID := c.PostForm("authorId")
	if callerID == "" {
		callerID = c.PostForm("userId")
	}

	paper, err := h.paperSvc.Create(
		c.Request.Context(),
		callerID,
		c.PostForm("authorName"),
		title,
		c.PostForm("abstract"),
		parseTags(c.PostForm("tags")),
		f,
		fileHeader.Filename,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title and file are required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading paper"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Paper uploaded successfully",
		"paper":   paper,
	})
}

// Edit handles PUT /api/research/:id (multipart form). The userId
// field must match the paper's author.
func (h *ResearchHandlers) Edit(c *gin.Context) {
	callerID := c.PostForm("userId")

	upd := domain.PaperUpdate{}
	if v, ok := c.GetPostForm("title"); ok {
		upd.Title = &v
	}
	if v, ok := c.GetPostForm("abstract"); ok {
		upd.Abstract = &v
	}
	if v, ok := c.GetPostForm("tags"); ok {
		upd.Tags = parseTags(v)
	}

	var file io.Reader
	filename := ""
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
			return
		}
		defer f.Close()
		file = f
		filename = fileHeader.Filename
	}

	paper, err := h.paperSvc.Edit(c.Request.Context(), c.Param("id"), callerID, upd, file, filename)
	if err != nil {
		respondPaperError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Paper updated successfully",
		"paper":   paper,
	})
}

// Delete handles DELETE /api/research/:id. The caller id comes from
// the userId query parameter or form field.
func (h *ResearchHandlers) Delete(c *gin.Context) {
	callerID := c.Query("userId")
	if callerID == "" {
		callerID = c.PostForm("userId")
	}

	if err := h.paperSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		respondPaperError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paper deleted successfully"})
}

func respondPaperError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Paper not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only modify your own papers"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing paper"})
	}
}

// parseTags splits a comma-separated tag list, preserving order.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
