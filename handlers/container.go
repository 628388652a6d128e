package handlers

import (
	"github.com/pelayanandata/portal-go/services"
	"github.com/pelayanandata/portal-go/websocket"
)

type Handlers struct {
	Auth    *AuthHandler
	Request *RequestHandler
	Content *ContentHandler
	Audit   *AuditHandler
	Ws      *WsHandler
}

func New(svc *services.Services, hub *websocket.RequestHub) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(svc.User),
		Request: NewRequestHandler(svc.Request),
		Content: NewContentHandler(svc.Content),
		Audit:   NewAuditHandler(svc.Audit),
		Ws:      NewWsHandler(hub),
	}
}
