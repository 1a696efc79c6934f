package rates

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creditbridge/credit-service/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyRateResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
	<soap12:Body>
		<KeyRateResponse xmlns="http://web.cbr.ru/">
			<KeyRateResult>
				<diffgram>
					<KeyRate>
						<KR>
							<DT>2026-08-28T00:00:00+03:00</DT>
							<Rate>16.50</Rate>
						</KR>
						<KR>
							<DT>2026-08-27T00:00:00+03:00</DT>
							<Rate>16.00</Rate>
						</KR>
					</KeyRate>
				</diffgram>
			</KeyRateResult>
		</KeyRateResponse>
	</soap12:Body>
</soap12:Envelope>`

func newTestClient(url string) *Client {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClient(&config.Config{RatesURL: url}, log)
}

func TestGetKeyRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/soap+xml")
		w.Write([]byte(keyRateResponse))
	}))
	defer server.Close()

	rate, err := newTestClient(server.URL).GetKeyRate()
	require.NoError(t, err)
	assert.Equal(t, 16.50, rate)
}

func TestGetKeyRateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetKeyRate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestGetKeyRateEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><Envelope><Body></Body></Envelope>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetKeyRate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key rate data")
}

func TestBuildSOAPRequestWindow(t *testing.T) {
	c := newTestClient("http://unused")
	body := c.buildSOAPRequest()

	assert.Contains(t, body, "<KeyRate xmlns=\"http://web.cbr.ru/\">")
	assert.Contains(t, body, time.Now().Format("2006-01-02"))
	assert.Contains(t, body, time.Now().AddDate(0, 0, -30).Format("2006-01-02"))
}
