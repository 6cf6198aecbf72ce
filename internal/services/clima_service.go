package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// TemperaturaIndisponivel é o valor exibido quando a consulta de clima
// falha ou estoura o timeout; nenhum erro é propagado ao painel
const TemperaturaIndisponivel = "N/A"

const chaveClima = "clima:temperatura"

// ClimaService consulta a temperatura atual na API Open-Meteo. O resultado
// fica em cache por um TTL próprio, independente do cache da tabela.
type ClimaService struct {
	baseURL   string
	latitude  float64
	longitude float64
	timeout   time.Duration
	cache     Cache
	ttl       time.Duration
	client    *http.Client
}

// NewClimaService cria o serviço de clima
func NewClimaService(baseURL string, latitude, longitude float64, timeout time.Duration, cache Cache, ttl time.Duration) *ClimaService {
	return &ClimaService{
		baseURL:   baseURL,
		latitude:  latitude,
		longitude: longitude,
		timeout:   timeout,
		cache:     cache,
		ttl:       ttl,
		client:    &http.Client{},
	}
}

// respostaClima espelha o trecho relevante da resposta da Open-Meteo
type respostaClima struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
	} `json:"current"`
}

// Temperatura retorna a temperatura atual formatada com uma casa decimal,
// ou TemperaturaIndisponivel em qualquer falha
func (s *ClimaService) Temperatura(ctx context.Context) string {
	if cached := s.cache.Get(chaveClima); cached != nil {
		if temperatura, ok := cached.(string); ok {
			return temperatura
		}
	}

	temperatura, err := s.consultar(ctx)
	if err != nil {
		log.Printf("Consulta de clima indisponível: %v", err)
		return TemperaturaIndisponivel
	}

	s.cache.Set(chaveClima, temperatura, s.ttl)
	return temperatura
}

func (s *ClimaService) consultar(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", s.latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", s.longitude))
	params.Set("current", "temperature_2m")
	params.Set("temperature_unit", "celsius")
	params.Set("timezone", "America/Sao_Paulo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d da API de clima", resp.StatusCode)
	}

	var corpo respostaClima
	if err := json.NewDecoder(resp.Body).Decode(&corpo); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.1f", corpo.Current.Temperature), nil
}
