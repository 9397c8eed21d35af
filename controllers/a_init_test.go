package controllers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log"
	"os"

	"superapp/catalog"
	"superapp/store"
)

func init() {
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)
	os.Setenv("SESSION_KEY", base64.StdEncoding.EncodeToString([]byte("test-session-key")))
}

func parsePayload(p interface{}) *bytes.Buffer {
	data, _ := json.Marshal(p)
	return bytes.NewBuffer(data)
}

func newTestAPI() *API {
	api := NewAPI()
	api.Store = store.New(store.NewMemoryKV())
	api.Products = catalog.NewRepository(api.Store)
	api.Chart = catalog.ChartJSRenderer{}
	return api
}
