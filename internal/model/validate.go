package model

import "github.com/go-playground/validator/v10"

// validate 包级校验器（validator 实例内部缓存结构体元信息，并发安全）
var validate = validator.New(validator.WithRequiredStructEnabled())
