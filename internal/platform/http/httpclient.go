package http

import (
	"context"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
)

// DefaultUserAgent は外部APIに提示するデスクトップ版ChromeのUser-Agentです。
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// browserHeaders はChromeがUser-Agentと共に送信するリクエストヘッダーです。
var browserHeaders = map[string]string{
	"Accept":             "application/json,text/html;q=0.9,*/*;q=0.8",
	"Accept-Language":    "en-US,en;q=0.9",
	"Sec-Ch-Ua":          `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`,
	"Sec-Ch-Ua-Mobile":   "?0",
	"Sec-Ch-Ua-Platform": `"Windows"`,
	"Sec-Fetch-Dest":     "empty",
	"Sec-Fetch-Mode":     "cors",
	"Sec-Fetch-Site":     "same-site",
}

// NewBrowserClient はChromeと同じネットワーク指紋を提示する外部API呼び出し用のHTTPクライアントを作成します。
//
// 設定:
//   - TLS: uTLSのChromeプリセットから組み立てたClientHello（ALPNはhttp/1.1のみ）
//   - Headers: リクエスト側で未設定の場合にChromeのUser-Agentとクライアントヒントを付与
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト（デフォルトより短い）
//   - Dialer.KeepAlive: 再利用可能なTCP接続の維持期間
//   - MaxIdleConns: 最大アイドル接続数（高負荷時の枯渇防止のため100）
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
//   - userAgentが空の場合はDefaultUserAgentを使用
func NewBrowserClient(timeout time.Duration, userAgent string) *http.Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		DialTLSContext:      chromeTLSDialer(dialer),
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &browserTransport{next: t, userAgent: userAgent},
	}
}

// browserTransport はブラウザのヘッダーを補ってからnextに委譲します。
type browserTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (b *browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", b.userAgent)
	}
	for k, v := range browserHeaders {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return b.next.RoundTrip(r)
}

// chromeTLSDialer はChromeのClientHelloでハンドシェイクするDialTLSContext関数を返します。
func chromeTLSDialer(d *net.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		spec, err := chromeSpec()
		if err != nil {
			return nil, err
		}

		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		uconn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloCustom)
		if err := uconn.ApplyPreset(&spec); err != nil {
			_ = conn.Close()
			return nil, err
		}
		if err := uconn.HandshakeContext(ctx); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return uconn, nil
	}
}

// chromeSpec はALPNをhttp/1.1に限定したChromeのClientHelloSpecを返します。
// net/httpは自前の*tls.Conn上でしかHTTP/2を話せないため、ここでh2をネゴシエートしてはいけません。
func chromeSpec() (utls.ClientHelloSpec, error) {
	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_Auto)
	if err != nil {
		return utls.ClientHelloSpec{}, err
	}
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}
	return spec, nil
}
