package middlewares

import (
	"sync"

	"github.com/google/uuid"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

var (
	correlacionOnce sync.Once
)

// UseCorrelacion asegura que toda petición lleve un X-Request-Id: propaga el
// que llega o acuña uno nuevo. El id viaja también en la respuesta para que
// el soporte pueda cruzar logs del panel con los del CRUD.
func UseCorrelacion() {
	correlacionOnce.Do(func() {
		beego.InsertFilter("/*", beego.BeforeRouter, correlacionFilter)
	})
}

func correlacionFilter(ctx *context.Context) {
	id := ctx.Input.Header("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
		ctx.Request.Header.Set("X-Request-Id", id)
	}
	ctx.Output.Header("X-Request-Id", id)
}
