package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(p, []byte(`mysql:
  db_name: ""
  ip: "127.0.0.1"
  port: 3306
  username: ""
  password: ""

redis:
  ip: "127.0.0.1"
  port: 6379
  password: ""
  db: 0

jwt:
  access_expiration: 10
  refresh_expiration: 20
  access_token_secret: "test_secret"
  refresh_token_secret: "test_secret"
  issuer: "test_issuer"

session:
  store_prefix: "auth_session:"
  name: "auth_session_id"
  path: "/"
  domain: ""
  max_age: 604800
  secure: false
  http_only: true
  same_site: "Strict"

oauth:
  provider: "google"
  client_id: "cid"
  client_secret: "secret"
  redirect_url: "http://localhost:8080/api/v1/member/oauth/callback"
  name_attribute_key: "sub"
  scopes:
    - "openid"
    - "profile"
    - "email"

story:
  upload_dir: "/tmp/story"
  require_login_policy: "strict"
  allowed_types:
    - "image/png"
    - "image/jpg"
    - "image/jpeg"
    - "image/gif"
`), 0600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	Init(p)
	if got := GetJWTConfig().Issuer; got != "test_issuer" {
		t.Fatalf("issuer mismatch: got=%q", got)
	}
	if got := GetOAuthConf().Provider; got != "google" {
		t.Fatalf("oauth provider mismatch: got=%q", got)
	}
	if got := GetStoryConf().RequireLoginPolicy; got != "strict" {
		t.Fatalf("story policy mismatch: got=%q", got)
	}
	if got := len(GetStoryConf().AllowedTypes); got != 4 {
		t.Fatalf("allowed types mismatch: got=%d", got)
	}
}
