package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/facerec/internal/repository"
	"github.com/example/facerec/internal/usecase"
)

// MaxUploadSize bounds multipart memory buffering for photo uploads.
const MaxUploadSize = 8 << 20

// RegisterRoutes wires the HTTP handlers to the Gin router. modelsDir is
// served statically under /models, which is where published artifact URLs
// point.
func RegisterRoutes(router *gin.Engine, reg *usecase.RegistrationUseCase, pred *usecase.PredictionUseCase, info *usecase.ModelInfoUseCase, modelsDir string) {
	router.Static("/models", modelsDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1.0")

	api.POST("/user/register", func(c *gin.Context) {
		name := c.PostForm("name")
		position := c.PostForm("position")

		var photos []usecase.PhotoUpload
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, header := range form.File["photos"] {
				src, err := header.Open()
				if err != nil {
					internalError(c)
					return
				}
				defer src.Close()
				photos = append(photos, usecase.PhotoUpload{Filename: header.Filename, Data: src})
			}
		}

		user, _, err := reg.Register(c.Request.Context(), name, position, photos)
		if errors.Is(err, usecase.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "failed",
				"error":   "bad request",
				"message": "Name is required",
			})
			return
		}
		if err != nil {
			internalError(c)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status": "success",
			"user":   userJSON(*user),
		})
	})

	api.GET("/model", func(c *gin.Context) {
		model, err := info.LatestModel(c.Request.Context())
		if errors.Is(err, usecase.ErrModelNotReady) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "failed",
				"error":  "model is not ready",
			})
			return
		}
		if err != nil {
			internalError(c)
			return
		}

		users := make([]gin.H, 0, len(model.Users))
		for _, user := range model.Users {
			users = append(users, userJSON(user))
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"model": gin.H{
				"version": model.Version,
				"url":     hostURL(c) + model.URL,
				"users":   users,
			},
		})
	})

	api.POST("/user/recognize", func(c *gin.Context) {
		header, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "failed",
				"error":   "bad request",
				"message": "image is required",
			})
			return
		}
		src, err := header.Open()
		if err != nil {
			internalError(c)
			return
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			internalError(c)
			return
		}

		predictions, _, err := pred.Recognize(c.Request.Context(), data)
		if errors.Is(err, usecase.ErrModelNotReady) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "failed",
				"error":  "model is not ready",
			})
			return
		}
		if err != nil {
			internalError(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "find",
			"predictions": predictions,
		})
	})
}

func userJSON(user repository.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"position": user.Position,
	}
}

// hostURL rebuilds the request's base URL; the registry stores artifact
// locations relative to it.
func hostURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/"
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "failed",
		"error":   "oppsss",
		"message": "Something went really wrong",
	})
}
