package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func servidorClima(t *testing.T, corpo string, atraso time.Duration) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current") != "temperature_2m" {
			t.Errorf("parâmetro current = %q", r.URL.Query().Get("current"))
		}
		if atraso > 0 {
			time.Sleep(atraso)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(corpo))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTemperatura(t *testing.T) {
	server := servidorClima(t, `{"current":{"temperature_2m":31.4}}`, 0)
	clima := NewClimaService(server.URL, -16.6869, -49.2648, time.Second, NewTTLCache(), time.Minute)

	if got := clima.Temperatura(context.Background()); got != "31.4" {
		t.Errorf("Temperatura = %q, esperado 31.4", got)
	}
}

func TestTemperaturaTimeout(t *testing.T) {
	server := servidorClima(t, `{"current":{"temperature_2m":31.4}}`, 300*time.Millisecond)
	clima := NewClimaService(server.URL, -16.6869, -49.2648, 50*time.Millisecond, NewTTLCache(), time.Minute)

	if got := clima.Temperatura(context.Background()); got != TemperaturaIndisponivel {
		t.Errorf("Temperatura com timeout = %q, esperado %q", got, TemperaturaIndisponivel)
	}
}

func TestTemperaturaErroHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	clima := NewClimaService(server.URL, -16.6869, -49.2648, time.Second, NewTTLCache(), time.Minute)
	if got := clima.Temperatura(context.Background()); got != TemperaturaIndisponivel {
		t.Errorf("Temperatura com erro 500 = %q, esperado %q", got, TemperaturaIndisponivel)
	}
}

func TestTemperaturaUsaCache(t *testing.T) {
	chamadas := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chamadas++
		w.Write([]byte(`{"current":{"temperature_2m":25.0}}`))
	}))
	t.Cleanup(server.Close)

	clima := NewClimaService(server.URL, -16.6869, -49.2648, time.Second, NewTTLCache(), time.Minute)
	ctx := context.Background()

	clima.Temperatura(ctx)
	clima.Temperatura(ctx)

	if chamadas != 1 {
		t.Errorf("chamadas à API = %d, esperado 1 (cache hit)", chamadas)
	}
}
