package bcb

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/mywealth360/finance-service/internal/config"
	"github.com/sirupsen/logrus"
)

// ptaxUSDSeries is the SGS series id for the PTAX USD selling rate
const ptaxUSDSeries = 1

// BCBClient handles integration with Banco Central do Brasil
type BCBClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewBCBClient initializes a new BCB client
func NewBCBClient(cfg *config.Config, log *logrus.Logger) *BCBClient {
	return &BCBClient{
		url: cfg.BCBURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildSOAPRequest creates a SOAP request for the latest PTAX value
func (c *BCBClient) buildSOAPRequest() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
			<soapenv:Body>
				<getUltimoValorXML xmlns="http://publico.ws.casosdeuso.sgs.pec.bcb.gov.br">
					<in0>%d</in0>
				</getUltimoValorXML>
			</soapenv:Body>
		</soapenv:Envelope>`, ptaxUSDSeries)
}

// sendRequest sends the SOAP request to BCB
func (c *BCBClient) sendRequest(soapRequest string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer([]byte(soapRequest)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "getUltimoValorXML")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("BCB XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse extracts the rate value from the SGS response
func (c *BCBClient) parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	valorElement := doc.FindElement("//SERIE/VALOR")
	if valorElement == nil {
		valorElement = doc.FindElement("//VALOR")
	}
	if valorElement == nil {
		return 0, fmt.Errorf("no rate value found in XML")
	}

	var rate float64
	if _, err := fmt.Sscanf(valorElement.Text(), "%f", &rate); err != nil {
		return 0, fmt.Errorf("failed to parse rate: %v", err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("invalid rate value: %f", rate)
	}

	return rate, nil
}

// GetUSDRate retrieves the latest PTAX USD/BRL selling rate
func (c *BCBClient) GetUSDRate() (float64, error) {
	soapRequest := c.buildSOAPRequest()
	body, err := c.sendRequest(soapRequest)
	if err != nil {
		return 0, err
	}

	rate, err := c.parseXMLResponse(body)
	if err != nil {
		return 0, err
	}

	c.log.Infof("Retrieved PTAX USD rate: %.4f", rate)
	return rate, nil
}
