package infra

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/morikuni/failure/v2"

	"github.com/morisolt/facetkit/internal/errors"
)

type HttpClient struct {
	Client *http.Client
}

type Request struct {
	Url     string
	Headers map[string]string
}

type PostRequest struct {
	Request
	Entity any
}

func NewHttpClient() *HttpClient {

	dt := http.DefaultTransport
	transport := dt.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = time.Duration(30) * time.Second
	transport.MaxIdleConns = transport.MaxIdleConnsPerHost * 2
	return &HttpClient{
		Client: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(5) * time.Second,
		},
	}
}

func (c *HttpClient) Get(ctx context.Context, req Request, expected any) error {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, req.Url, nil)
	if err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to create request")),
			failure.Context{
				"url": req.Url,
			},
		)
	}
	for k, v := range req.Headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}

	res, err := c.Client.Do(r)
	if err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to send request")),
			failure.Context{
				"url": req.Url,
			},
		)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return failure.New(
			errors.ErrInternal,
			failure.Field(failure.Message("unexpected status code")),
			failure.Context{
				"url":  req.Url,
				"code": fmt.Sprintf("%d", res.StatusCode),
			},
		)
	}

	return decodeBody(res.Body, req.Url, expected)
}

func (c *HttpClient) Post(ctx context.Context, req PostRequest, expected any) error {
	encoded, err := sonic.Marshal(req.Entity)
	if err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to encode request entity")),
			failure.Context{
				"url":    req.Url,
				"entity": fmt.Sprintf("%+v", req.Entity),
			},
		)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, req.Url, bytes.NewBuffer(encoded))
	if err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to create request")),
			failure.Context{
				"url": req.Url,
				"req": string(encoded),
			},
		)
	}
	for k, v := range req.Headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}
	r.Header.Set("Content-Type", "application/json")

	res, err := c.Client.Do(r)
	if err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to send request")),
			failure.Context{
				"url": req.Url,
				"req": string(encoded),
			},
		)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return failure.New(
			errors.ErrInternal,
			failure.Field(failure.Message("unexpected status code")),
			failure.Context{
				"url":  req.Url,
				"req":  string(encoded),
				"code": fmt.Sprintf("%d", res.StatusCode),
			},
		)
	}

	return decodeBody(res.Body, req.Url, expected)
}

func decodeBody(body io.Reader, url string, expected any) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to read response body")),
			failure.Context{
				"url": url,
			},
		)
	}

	if err := sonic.Unmarshal(raw, expected); err != nil {
		return failure.Translate(
			err,
			errors.ErrInternal,
			failure.Field(failure.Message("failed to decode response body")),
			failure.Context{
				"url": url,
			},
		)
	}

	return nil
}
