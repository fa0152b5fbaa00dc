package logger

import "go.uber.org/zap"

// New สร้าง zap logger: development เป็น console อ่านง่าย นอกนั้นเป็น JSON
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
