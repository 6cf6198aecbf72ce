package sheets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/estudos-cmg/painel-estudos/internal/config"
	"github.com/estudos-cmg/painel-estudos/internal/constants"
	"github.com/estudos-cmg/painel-estudos/internal/models"
)

// arquivoCredencialLocal é o fallback quando nenhuma variável de ambiente
// de credencial está definida
const arquivoCredencialLocal = "credentials.json"

// Client encapsula o acesso à planilha de conteúdos. O handle do serviço é
// reutilizável e vive pelo processo inteiro; o client não guarda nenhum
// outro estado além do índice da coluna Status, resolvido na abertura.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
	colunaStatus  int
}

// NewClient abre uma sessão autenticada com a planilha e valida que o
// documento e a aba existem. O índice da coluna Status é resolvido pelo
// cabeçalho na abertura; se o cabeçalho não puder ser lido, vale o índice
// padrão da coluna 4.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: SHEETS_SPREADSHEET_ID não definido", ErrCredenciais)
	}

	opts, err := credenciais()
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredenciais, err)
	}

	c := &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		colunaStatus:  constants.ColunaStatusPadrao,
	}

	if err := c.verificarAba(ctx); err != nil {
		return nil, err
	}

	if err := c.resolverColunaStatus(ctx); err != nil {
		log.Printf("Não foi possível resolver a coluna Status pelo cabeçalho, usando coluna %d: %v",
			constants.ColunaStatusPadrao, err)
	}

	return c, nil
}

// credenciais resolve a credencial de service account: JSON inline na
// variável de ambiente, caminho de arquivo, ou credentials.json local
func credenciais() ([]option.ClientOption, error) {
	if inline := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")); inline != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(inline))}, nil
	}
	if caminho := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")); caminho != "" {
		return []option.ClientOption{option.WithCredentialsFile(caminho)}, nil
	}
	if _, err := os.Stat(arquivoCredencialLocal); err == nil {
		return []option.ClientOption{option.WithCredentialsFile(arquivoCredencialLocal)}, nil
	}
	return nil, fmt.Errorf("%w: defina GOOGLE_APPLICATION_CREDENTIALS_JSON, GOOGLE_APPLICATION_CREDENTIALS ou forneça %s",
		ErrCredenciais, arquivoCredencialLocal)
}

// verificarAba confirma que o documento existe e contém a aba configurada
func (c *Client) verificarAba(ctx context.Context) error {
	doc, err := c.service.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return classificar(err)
	}

	for _, aba := range doc.Sheets {
		if aba.Properties != nil && aba.Properties.Title == c.sheetName {
			return nil
		}
	}
	return fmt.Errorf("%w: aba %q", ErrNaoEncontrada, c.sheetName)
}

// resolverColunaStatus lê a linha de cabeçalho e localiza a coluna Status
// pelo nome, evitando gravações num índice fixo caso o esquema mude
func (c *Client) resolverColunaStatus(ctx context.Context) error {
	faixa := fmt.Sprintf("%s!1:1", c.sheetName)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, faixa).Context(ctx).Do()
	if err != nil {
		return classificar(err)
	}
	if len(resp.Values) == 0 {
		return fmt.Errorf("cabeçalho vazio na aba %q", c.sheetName)
	}

	for i, celula := range resp.Values[0] {
		if strings.EqualFold(strings.TrimSpace(texto(celula)), "Status") {
			c.colunaStatus = i + 1
			return nil
		}
	}
	return fmt.Errorf("coluna Status ausente no cabeçalho da aba %q", c.sheetName)
}

// ColunaStatus retorna o índice 1-based da coluna Status resolvido na abertura
func (c *Client) ColunaStatus() int {
	return c.colunaStatus
}

// Chave identifica a planilha para fins de cache
func (c *Client) Chave() string {
	return c.spreadsheetID + "/" + c.sheetName
}

// LerTudo retorna todas as linhas de dados da aba, cada uma com sua posição
// 1-based na planilha (a linha 1 é o cabeçalho, então os dados começam em 2)
func (c *Client) LerTudo(ctx context.Context) ([]models.LinhaBruta, error) {
	faixa := fmt.Sprintf("%s!A2:D", c.sheetName)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, faixa).Context(ctx).Do()
	if err != nil {
		return nil, classificar(err)
	}

	linhas := make([]models.LinhaBruta, 0, len(resp.Values))
	for i, valores := range resp.Values {
		linhas = append(linhas, models.LinhaBruta{
			Linha:      i + 2,
			Cargo:      coluna(valores, 0),
			Disciplina: coluna(valores, 1),
			Conteudo:   coluna(valores, 2),
			Status:     coluna(valores, 3),
		})
	}
	return linhas, nil
}

// AtualizarCelula sobrescreve uma única célula. Em caso de falha o chamador
// não deve invalidar o cache, já que o valor persistido não mudou.
func (c *Client) AtualizarCelula(ctx context.Context, linha, coluna int, valor string) error {
	faixa := fmt.Sprintf("%s!%s%d", c.sheetName, letraColuna(coluna), linha)
	corpo := &sheets.ValueRange{
		Values: [][]interface{}{{valor}},
	}

	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, faixa, corpo).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return classificar(err)
	}
	return nil
}

// Verificar checa a conectividade com o documento (usado pelos health checks)
func (c *Client) Verificar(ctx context.Context) error {
	_, err := c.service.Spreadsheets.Get(c.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return classificar(err)
	}
	return nil
}

// classificar mapeia erros da API do Google para os erros sentinela do pacote
func classificar(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("%w: %v", ErrCredenciais, err)
		case 404:
			return fmt.Errorf("%w: %v", ErrNaoEncontrada, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrTransporte, err)
}

// letraColuna converte um índice 1-based para a letra da coluna (1 -> A)
func letraColuna(n int) string {
	letras := ""
	for n > 0 {
		n--
		letras = string(rune('A'+n%26)) + letras
		n /= 26
	}
	return letras
}

func coluna(valores []interface{}, i int) string {
	if i >= len(valores) {
		return ""
	}
	return texto(valores[i])
}

func texto(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
