package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"exam-command-center/be/config"
	"exam-command-center/be/models"
)

// fallbackMessage is shown when the registry fails without a usable message.
const fallbackMessage = "Failed to create camera"

// RegistryService creates cameras against the external camera registry. The
// store's contract with it is narrow: given a creation intent, it hands back
// either a fully-formed camera or an error string to display. One attempt per
// intent, no retry; the client timeout bounds the request.
type RegistryService struct {
	config     config.RegistryConfig
	httpClient *http.Client
}

func NewRegistryService(cfg config.RegistryConfig) *RegistryService {
	return &RegistryService{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether an external registry is configured. Without one,
// camera creation stays local to the store.
func (s *RegistryService) Enabled() bool {
	return s.config.Endpoint != ""
}

type createCameraRequest struct {
	Name   string              `json:"name"`
	Status models.CameraStatus `json:"status"`
	Note   string              `json:"note,omitempty"`
}

// CreateCamera submits a creation request and decodes the response once at
// this boundary: either a bare camera object or a {success, result, message}
// envelope, as JSON or plain text. Callers never inspect response shapes.
func (s *RegistryService) CreateCamera(name, note string) (*models.Camera, error) {
	payload, err := json.Marshal(createCameraRequest{
		Name:   name,
		Status: models.CameraOffline,
		Note:   note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal camera request: %w", err)
	}

	req, err := http.NewRequest("POST", s.config.Endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach camera registry: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry response: %w", err)
	}

	camera, err := decodeCreateResponse(resp.StatusCode, body)
	if err != nil {
		return nil, err
	}

	fmt.Printf("[Registry] Camera created remotely: %s (id %d)\n", camera.Name, camera.ID)
	return camera, nil
}

// decodeCreateResponse turns the registry's loosely-shaped reply into a
// tagged result. Success needs both a 2xx status and, when the envelope is
// present, success=true; everything else is a failure carrying the server's
// message or the fallback.
func decodeCreateResponse(statusCode int, body []byte) (*models.Camera, error) {
	ok := statusCode >= 200 && statusCode < 300

	var envelope struct {
		Success *bool           `json:"success"`
		Result  json.RawMessage `json:"result"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Plain-text body. A camera can only come from JSON, so even a 2xx
		// cannot succeed here.
		message := strings.TrimSpace(string(body))
		if message == "" || ok {
			message = fallbackMessage
		}
		return nil, errors.New(message)
	}

	if envelope.Success != nil {
		if !ok || !*envelope.Success {
			if envelope.Message != "" {
				return nil, errors.New(envelope.Message)
			}
			return nil, errors.New(fallbackMessage)
		}
		return decodeCamera(envelope.Result)
	}

	if !ok {
		if envelope.Message != "" {
			return nil, errors.New(envelope.Message)
		}
		return nil, errors.New(fallbackMessage)
	}
	return decodeCamera(body)
}

func decodeCamera(data []byte) (*models.Camera, error) {
	var camera models.Camera
	if err := json.Unmarshal(data, &camera); err != nil || camera.Name == "" {
		return nil, errors.New(fallbackMessage)
	}
	if camera.Status == "" {
		camera.Status = models.CameraOffline
	}
	return &camera, nil
}
