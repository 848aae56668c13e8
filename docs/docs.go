// Package docs 注册 swagger 文档，与 controller 上的注解保持一致
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {"get": {"tags": ["系统"], "summary": "健康检查", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "数据库不可用"}}}},
        "/api/register": {"post": {"tags": ["认证"], "summary": "注册新用户", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "创建成功"}, "400": {"description": "请求参数错误"}, "409": {"description": "邮箱已被注册"}}}},
        "/api/login": {"post": {"tags": ["认证"], "summary": "用户登录", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "登录成功"}, "401": {"description": "邮箱或密码错误"}}}},
        "/api/profile": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["认证"], "summary": "当前用户信息", "responses": {"200": {"description": "OK"}}}},
        "/api/subjects": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["科目"], "summary": "科目列表", "responses": {"200": {"description": "OK"}}}},
        "/api/student/primary-subject": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["学生"], "summary": "选择主攻科目", "responses": {"200": {"description": "OK"}, "409": {"description": "已选择过主攻科目"}}}},
        "/api/student/daily-set": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["每日练习"], "summary": "获取今日题组", "responses": {"200": {"description": "OK"}, "400": {"description": "未选择主攻科目"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["每日练习"], "summary": "提交今日题组", "responses": {"200": {"description": "OK"}, "400": {"description": "答案不合法"}, "404": {"description": "题组不存在"}, "409": {"description": "题组已完成"}}}
        },
        "/api/student/attempts": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["学生"], "summary": "答题记录", "responses": {"200": {"description": "OK"}}}},
        "/api/author/questions": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "我的题目", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "新建题目", "responses": {"201": {"description": "Created"}, "400": {"description": "题目不合法"}}}
        },
        "/api/author/questions/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "题目详情", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "不是自己的题目"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "修改题目", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "删除题目", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/author/questions/{id}/image": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "上传题目配图", "consumes": ["multipart/form-data"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/admin/subjects": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["科目管理"], "summary": "新建科目", "responses": {"201": {"description": "Created"}, "409": {"description": "科目名称已存在"}}}},
        "/api/admin/subjects/{id}": {
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["科目管理"], "summary": "修改科目", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["科目管理"], "summary": "删除科目", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "科目仍有题目"}}}
        },
        "/api/admin/users": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["管理员"], "summary": "用户列表", "responses": {"200": {"description": "OK"}}}},
        "/api/admin/users/{id}/role": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["管理员"], "summary": "修改用户角色", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/admin/users/{id}/disable": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["管理员"], "summary": "禁用/启用用户", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/admin/stats": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["管理员"], "summary": "平台统计", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Exam Prep 后端 API",
	Description:      "考试备考练习平台的后端服务，提供每日题组、题库与管理接口。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
