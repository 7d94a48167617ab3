package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/meverselabs/useswap/service/apiserver"
	"github.com/pkg/errors"
)

func DoRequest(hostURL string, Method string, Params []interface{}) (interface{}, error) {
	req := &apiserver.JRPCRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  Method,
		Params:  Params,
	}
	bs, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	r, err := http.Post(hostURL+"/api/endpoints/http", "application/json", bytes.NewReader(bs))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Body.Close()

	var res apiserver.JRPCResponse
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		return nil, errors.WithStack(err)
	}
	if res.Error != nil {
		return nil, errors.Errorf("%v (code %v)", res.Error.Message, res.Error.Code)
	}
	return res.Result, nil
}

func printJSON(v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(bs))
	return nil
}

func requestAndPrint(hostURL string, Method string, Params ...interface{}) error {
	if Params == nil {
		Params = []interface{}{}
	}
	res, err := DoRequest(hostURL, Method, Params)
	if err != nil {
		return err
	}
	return printJSON(res)
}
