package render

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/sober-studio/medtrack/internal/pkg/auth"
	"github.com/sober-studio/medtrack/internal/pkg/debug"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/json"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	httptransport "github.com/go-kratos/kratos/v2/transport/http"
)

// Reply 统一错误返回体
type Reply struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
	// Debug 仅在开发/测试环境显示
	Debug interface{} `json:"debug,omitempty"`
}

// getCodec 按 Accept 选择编码器，默认 JSON
func getCodec(r *http.Request) encoding.Codec {
	codec, ok := httptransport.CodecForRequest(r, "Accept")
	if !ok || codec == nil {
		codec = encoding.GetCodec(json.Name)
	}
	return codec
}

func withDebug(r *http.Request, res *Reply) {
	if !debug.IsDebug() {
		return
	}
	if info, ok := debug.FromContext(r.Context()); ok {
		res.Debug = info
	}
}

// RequestDecoder 解析请求体；未声明 Content-Type 时按 JSON 处理，空 body 直接跳过
// GET /users 等接口需要从 body 读取 email，客户端经常不带 Content-Type
func RequestDecoder(r *http.Request, v interface{}) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.BadRequest("CODEC", err.Error())
	}
	r.Body = io.NopCloser(bytes.NewBuffer(data))
	if len(data) == 0 {
		return nil
	}
	codec, _ := httptransport.CodecForRequest(r, "Content-Type")
	if err := codec.Unmarshal(data, v); err != nil {
		return errors.BadRequest("CODEC", fmt.Sprintf("body unmarshal %s", err.Error()))
	}
	return nil
}

// ResponseEncoder 成功响应直接输出业务数据；状态码由 Result 决定，这里不再写入
func ResponseEncoder(w http.ResponseWriter, r *http.Request, data interface{}) error {
	codec := getCodec(r)
	body, err := codec.Marshal(data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	_, err = w.Write(body)
	return err
}

// ErrorEncoder 错误响应的处理
func ErrorEncoder(w http.ResponseWriter, r *http.Request, err error) {
	se := errors.FromError(auth.Public(err))

	res := &Reply{
		Code:    int(se.Code),
		Reason:  se.Reason,
		Message: se.Message,
	}
	withDebug(r, res)

	status := int(se.Code)
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		log.Errorf("request %s %s failed: %v", r.Method, r.URL.Path, err)
	}

	codec := getCodec(r)
	body, mErr := codec.Marshal(res)
	if mErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
