package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-checkmaster/internal/adapter"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

// MaxImageBytes limita o tamanho da foto enviada para reconhecimento
const MaxImageBytes = 10 << 20

// RecognitionHandler expõe o reconhecimento de veículos por foto
type RecognitionHandler struct {
	recognizer adapter.VehicleRecognizer
}

// NewRecognitionHandler cria um novo handler de reconhecimento
func NewRecognitionHandler(recognizer adapter.VehicleRecognizer) *RecognitionHandler {
	return &RecognitionHandler{recognizer: recognizer}
}

// RecognizeVehicle godoc
// @Summary Reconhece placa, marca, modelo e IMEI a partir de uma foto
// @Description Aceita multipart (campo image) ou a imagem crua no corpo. Sempre responde 200: quando nada é reconhecido, ou o provedor falha, todos os campos vêm vazios e o operador preenche manualmente.
// @Tags recognition
// @Accept multipart/form-data,image/jpeg,image/png
// @Produce json
// @Param image formData file false "Foto do veículo"
// @Success 200 {object} models.VehicleInfo
// @Router /api/v1/recognition [post]
func (h *RecognitionHandler) RecognizeVehicle(c *gin.Context) {
	image, mimeType, err := readImage(c)
	if err != nil {
		log.Printf("[Recognition] Imagem não lida, retornando dados vazios: %v", err)
		c.JSON(http.StatusOK, models.EmptyVehicleInfo())
		return
	}

	info := h.recognizer.Recognize(c.Request.Context(), image, mimeType)
	c.JSON(http.StatusOK, info)
}

func readImage(c *gin.Context) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxImageBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return nil, "", err
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		return data, fileHeader.Header.Get("Content-Type"), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, "", err
	}
	mimeType := c.ContentType()
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = ""
	}
	return data, mimeType, nil
}
