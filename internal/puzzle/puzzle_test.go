package puzzle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/John-Robertt/SpellBee/internal/infra/httpx"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Spelling Bee</title></head>
<body>
<div id="pz-game-root"></div>
<script type="text/javascript">
window.gameData = {"today":{"displayDate":"May 1, 2024","centerLetter":"g","outerLetters":["r","a","m","n","o","t"],"validLetters":["g","r","a","m","n","o","t"]}}
</script>
</body>
</html>`

func TestParse_SamplePage(t *testing.T) {
	letters, err := Parse([]byte(samplePage))
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if letters != "GRAMNOT" {
		t.Fatalf("期望 %q，实际 %q", "GRAMNOT", letters)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		html string
	}{
		{"空 html", ""},
		{"无 gameData 脚本", `<html><script>var x = 1;</script></html>`},
		{"JSON 损坏", `<html><script>window.gameData = {broken</script></html>`},
		{"centerLetter 非单字母", `<html><script>window.gameData = {"today":{"centerLetter":"gg","outerLetters":["a"]}}</script></html>`},
		{"outerLetters 为空", `<html><script>window.gameData = {"today":{"centerLetter":"g","outerLetters":[]}}</script></html>`},
		{"outerLetters 含非字母", `<html><script>window.gameData = {"today":{"centerLetter":"g","outerLetters":["a","1"]}}</script></html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.html)); err == nil {
				t.Fatalf("期望失败，但得到 nil")
			}
		})
	}
}

func TestFetch_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("期望设置 User-Agent")
		}
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	c, err := httpx.NewClient("")
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	b, err := Fetch(context.Background(), c, srv.URL)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if !strings.Contains(string(b), "window.gameData") {
		t.Fatalf("期望拿到页面 HTML，实际 %q", string(b))
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := httpx.NewClient("")
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	if _, err := Fetch(context.Background(), c, srv.URL); err == nil {
		t.Fatalf("期望 HTTP 403 被当作错误，但得到 nil")
	}
}

func TestFetch_NilClient(t *testing.T) {
	if _, err := Fetch(context.Background(), nil, "http://example.com"); err == nil {
		t.Fatalf("期望失败，但得到 nil")
	}
}
