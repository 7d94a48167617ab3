package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/meverselabs/useswap/common/rlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// DefaultWorkers is the number of goroutines handling requests
const DefaultWorkers = 50

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type reqData struct {
	req   *JRPCRequest
	resCh chan *JRPCResponse
}

// APIServer provides json rpc and web service for the chain
type APIServer struct {
	sync.Mutex
	e       *echo.Echo
	subMap  map[string]*JRPCSub
	reqCh   chan *reqData
	workers int
	once    sync.Once
	log     *zap.Logger
}

// NewAPIServer returns a APIServer
func NewAPIServer(workers int) *APIServer {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	s := &APIServer{
		e:       echo.New(),
		subMap:  map[string]*JRPCSub{},
		reqCh:   make(chan *reqData),
		workers: workers,
		log:     rlog.Named("apiserver"),
	}
	s.e.HideBanner = true
	s.e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	s.e.POST("/", s.handleHTTP)
	s.e.POST("/api/endpoints/http", s.handleHTTP)
	s.e.GET("/api/endpoints/websocket", s.handleWebsocket)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return s
}

// Name returns the name of the service
func (s *APIServer) Name() string {
	return "useswap.apiserver"
}

// Handler returns the http handler of the server with the workers started
func (s *APIServer) Handler() http.Handler {
	s.startWorkers()
	return s.e
}

// Run starts web service of the apiserver
func (s *APIServer) Run(BindAddress string) error {
	s.startWorkers()
	s.log.Info("listen", zap.String("address", BindAddress))
	return s.e.Start(BindAddress)
}

// Shutdown stops the web service
func (s *APIServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *APIServer) startWorkers() {
	s.once.Do(func() {
		for i := 0; i < s.workers; i++ {
			go func() {
				for r := range s.reqCh {
					r.resCh <- s.handleJRPC(r.req)
				}
			}()
		}
	})
}

func (s *APIServer) dispatch(req *JRPCRequest) *JRPCResponse {
	resCh := make(chan *JRPCResponse, 1)
	s.reqCh <- &reqData{
		req:   req,
		resCh: resCh,
	}
	return <-resCh
}

func decodeRequest(data []byte) (*JRPCRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var req JRPCRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *APIServer) handleHTTP(c echo.Context) error {
	defer c.Request().Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(c.Request().Body); err != nil {
		return err
	}
	req, err := decodeRequest(buf.Bytes())
	if err != nil {
		return c.JSON(http.StatusOK, &JRPCResponse{
			JSONRPC: "2.0",
			Error:   &JRPCError{Code: CodeParseError, Message: err.Error()},
		})
	}
	res := s.dispatch(req)
	if res == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *APIServer) handleWebsocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}
		req, err := decodeRequest(data)
		if err != nil {
			return err
		}
		res := s.dispatch(req)
		if res == nil {
			continue
		}
		if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			return err
		}
		if err := conn.WriteJSON(res); err != nil {
			return err
		}
	}
}

// JRPC provides the json rpc feature as a SubName.FunctionName methods
func (s *APIServer) JRPC(SubName string) (*JRPCSub, error) {
	s.Lock()
	defer s.Unlock()

	if _, has := s.subMap[SubName]; has {
		return nil, ErrExistSubName
	}
	js := NewJRPCSub()
	s.subMap[SubName] = js
	return js, nil
}

// splitMethod reads "sub.method" and the ethereum style "sub_method"
func splitMethod(method string) (string, string, bool) {
	if ls := strings.SplitN(method, ".", 2); len(ls) == 2 {
		return ls[0], ls[1], true
	}
	if ls := strings.SplitN(method, "_", 2); len(ls) == 2 {
		return ls[0], ls[1], true
	}
	return "", "", false
}

func (s *APIServer) handleJRPC(req *JRPCRequest) *JRPCResponse {
	start := time.Now()
	res := &JRPCResponse{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
	}

	subName, funcName, ok := splitMethod(req.Method)
	var fn Handler
	if ok {
		s.Lock()
		sub, has := s.subMap[subName]
		s.Unlock()
		if has {
			fn, ok = sub.get(funcName)
		} else {
			ok = false
		}
	}
	if !ok {
		rpcRequests.WithLabelValues("unknown", "error").Inc()
		if req.ID == nil {
			return nil
		}
		res.Error = &JRPCError{Code: CodeMethodNotFound, Message: ErrInvalidMethod.Error()}
		return res
	}

	ret, err := fn(req.ID, NewArgument(req.Params))
	rpcDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	if err != nil {
		rpcRequests.WithLabelValues(req.Method, "error").Inc()
		s.log.Debug("request failed", zap.String("method", req.Method), zap.Error(err))
		res.Error = &JRPCError{Code: errorCode(err), Message: err.Error()}
	} else {
		rpcRequests.WithLabelValues(req.Method, "ok").Inc()
		res.Result = ret
	}
	if req.ID == nil {
		return nil
	}
	return res
}
