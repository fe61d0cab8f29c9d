package tokenrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/virel-project/virel-token/rpc"
)

type RpcClient struct {
	DaemonAddress string

	// username:password sent with Basic Auth, if not empty
	Authentication string

	Client *http.Client
}

func NewRpcClient(addr string) *RpcClient {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &RpcClient{
		DaemonAddress: addr,
		Client:        http.DefaultClient,
	}
}

// Request calls method with params and decodes the result into output. Errors returned by the node are
// of type *rpc.Error.
func (r *RpcClient) Request(method string, params any, output any) error {
	body := rpc.RequestOut{
		JsonRpc: "2.0",
		Method:  method,
		Params:  params,
		Id:      0,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", r.DaemonAddress, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.Authentication != "" {
		uname, pw, _ := strings.Cut(r.Authentication, ":")
		req.SetBasicAuth(uname, pw)
	}

	res, err := r.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	dat, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	out := rpc.ResponseIn{}

	err = json.Unmarshal(dat, &out)
	if err != nil {
		return fmt.Errorf("invalid response (status %d): %w", res.StatusCode, err)
	}

	if out.Error != nil {
		return out.Error
	}

	return json.Unmarshal(out.Result, output)
}
