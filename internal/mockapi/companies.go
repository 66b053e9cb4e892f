package mockapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/winkhq/onboard/internal/common"
)

// maxLogoSize is the upload size limit, matching the client-side check.
const maxLogoSize = 5 * 1024 * 1024

var allowedLogoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

func (s *Server) createCompany(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		LogoURL string `json:"logoUrl"`
	}
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Le nom de l'entreprise est requis"})
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "L'adresse est requise"})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	company := Company{
		ID:        fmt.Sprintf("company-%s", uuid.NewString()),
		Name:      strings.TrimSpace(req.Name),
		Address:   strings.TrimSpace(req.Address),
		LogoURL:   req.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.companies.add(company)

	s.logger.Info(c.Request.Context(), "company created", "id", company.ID, "name", company.Name)
	c.JSON(http.StatusCreated, company)
}

func (s *Server) uploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Aucun fichier fourni"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxLogoSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Le fichier est trop volumineux. Taille maximale : 5MB"})
		return
	}
	if _, ok := allowedLogoTypes[header.Header.Get("Content-Type")]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Format de fichier non supporté. Formats acceptés : JPEG, PNG, GIF, WebP"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxLogoSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Aucun fichier fourni"})
		return
	}

	prefix, err := common.MakeRandHexString(8)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	filename := fmt.Sprintf("%s-%s", prefix, filepath.Base(header.Filename))
	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), data, 0o660); err != nil {
		s.logger.Error(c.Request.Context(), "failed to store logo", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	url := fmt.Sprintf("%s/logos/%s", strings.TrimRight(s.cfg.BaseURL, "/"), filename)
	c.JSON(http.StatusOK, gin.H{"url": url})
}
