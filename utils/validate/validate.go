package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	cErr "orgchart/internal/pkg/error"
	"orgchart/internal/pkg/request"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(obj interface{}, err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("field \"%s\" must be of type %s", typeErr.Field, typeErr.Type)
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func structType(obj interface{}) reflect.Type {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func jsonFieldName(obj interface{}, structField string) string {
	t := structType(obj)
	if t == nil || t.Kind() != reflect.Struct {
		return structField
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	t := structType(obj)
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Type.String()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	t := structType(obj)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}

// BindAndValidate 綁定 JSON body；請求型別有自訂訊息（request.Validator）時優先使用
func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		var errs validator.ValidationErrors
		if _, ok := req.(request.Validator); ok && errors.As(err, &errs) {
			return err, request.GetError(req, errs)
		}
		return err, cErr.ValidateErr(ValidationErrorResponse(req, err))
	}
	return nil, nil
}

func GetInt64Query(c *gin.Context, key string, defaultVal int64) (int64, error) {
	if v := c.Query(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	return defaultVal, nil
}
