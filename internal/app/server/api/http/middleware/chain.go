package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Chain копит мидлвари для очередной группы операций
type Chain struct {
	mws huma.Middlewares
}

func NewChain(mws ...func(huma.Context, func(huma.Context))) *Chain {
	c := &Chain{}
	return c.Add(mws...)
}

// Add добавляет мидлвари в конец цепочки
func (c *Chain) Add(mws ...func(huma.Context, func(huma.Context))) *Chain {
	c.mws = append(c.mws, mws...)
	return c
}

// Take отдает накопленные мидлвари и очищает цепочку
func (c *Chain) Take() huma.Middlewares {
	result := c.mws
	c.mws = nil
	if result == nil {
		result = huma.Middlewares{}
	}
	return result
}
