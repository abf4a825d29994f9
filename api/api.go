package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"
	"roboadvisor/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                   *sql.DB
	SuggestionService    service.SuggestionService
	InvestmentService    service.InvestmentService
	UserRepository       repository.UserRepository
	ApiRequestRepository repository.APIRequestRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to roboadvisor"})
	})
	router.POST("/user/:username", m.createUser)
	router.POST("/suggestion", m.suggestion)
	router.POST("/investments/:username", m.createInvestment)
	router.GET("/investments/:username", m.getInvestments)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps the error taxonomy onto status codes: validation
// failures are 400, unknown users are 403, storage and everything else 500.
func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err)

	var validationErr apperrors.ValidationError
	var notFoundErr apperrors.NotFoundError

	code := 500
	if errors.As(err, &validationErr) {
		code = 400
	} else if errors.As(err, &notFoundErr) {
		code = 403
	}

	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddleware stashes the logger in the request context and records
// every request to the api_request audit table. Audit failures are logged and
// never fail the request itself.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	l := zap.S()
	ctx.Request = ctx.Request.WithContext(
		context.WithValue(ctx.Request.Context(), logger.ContextKey, l),
	)

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		l.Warnf("failed to get raw request data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	var username *string
	if u := ctx.Param("username"); u != "" {
		username = util.StringPointer(u)
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		Username:    username,
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		l.Warnf("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			l.Warnf("failed to update api request: %v", err)
		}
	}
}
