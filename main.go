// @title Exam Prep 后端 API
// @version 1.0
// @description 考试备考练习平台的后端服务，提供每日题组、题库与管理接口。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"exam_prep_backend/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
