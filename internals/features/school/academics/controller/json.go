package controller

import "github.com/bytedance/sonic"

func sonicMarshal(v any) ([]byte, error) { return sonic.Marshal(v) }
