// Package client es un cliente Go del API de gestión que mantiene un espejo
// en memoria del estado del servidor. Tras autenticarse descarga las cuatro
// colecciones completas; cada mutación llama al API y solo actualiza el espejo
// con la representación que devuelve el servidor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// APIError error devuelto por el servidor con su código de la taxonomía.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP con estado espejo. Seguro para uso concurrente.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
	user  *User
	state state
}

type state struct {
	operations []Operation
	expenses   []Expense
	tasks      []Task
	clients    []ClientRecord
}

// New construye un cliente apuntando a baseURL (sin slash final).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Token devuelve el bearer token vigente, vacío si no hay sesión.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// CurrentUser devuelve el usuario de la sesión, nil si no hay sesión.
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Login autentica y refresca el espejo completo.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (*User, error) {
	body := map[string]any{"email": email, "password": password, "rememberMe": rememberMe}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.setSession(out)
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	u := out.User
	return &u, nil
}

// Register crea la cuenta, guarda la sesión y refresca el espejo.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (*User, error) {
	body := map[string]any{"name": name, "email": email, "password": password, "role": role}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	c.setSession(out)
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	u := out.User
	return &u, nil
}

// Me consulta GET /api/auth/me y actualiza el usuario de la sesión.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = &out
	c.mu.Unlock()
	u := out
	return &u, nil
}

// Logout descarta la sesión y vacía el espejo.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.user = nil
	c.state = state{}
}

func (c *Client) setSession(out authResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = out.Token
	u := out.User
	c.user = &u
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("llamar %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Message == "" {
			apiErr = errorResponse{Code: "UNKNOWN", Message: string(raw)}
		}
		return &APIError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("deserializar respuesta: %w", err)
		}
	}
	return nil
}
