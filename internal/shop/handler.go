package shop

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/storefrontclub/storefront/internal/cart"
	"github.com/storefrontclub/storefront/internal/catalog"
	"github.com/storefrontclub/storefront/internal/payment"
	"github.com/storefrontclub/storefront/internal/phone"
	"github.com/storefrontclub/storefront/internal/vcard"
)

const MaxBodyBytes = 1 << 20 // 1 MB

// HandlerDeps carries the handler dependencies.
type HandlerDeps struct {
	Loader  *Loader
	Catalog *catalog.Catalog
	Carts   *cart.Registry
}

// Handler serves the storefront API: shop configuration, menu, contact and
// payment deep links, vCard download and cart sessions.
type Handler struct {
	loader  *Loader
	catalog *catalog.Catalog
	carts   *cart.Registry
	logger  apt.Logger
	config  *apt.Config
	tlm     *telemetry.HTTP
}

// NewHandler creates a new Handler for storefront operations.
func NewHandler(deps HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	carts := deps.Carts
	if carts == nil {
		carts = cart.NewRegistry(logger)
	}
	return &Handler{
		loader:  deps.Loader,
		catalog: deps.Catalog,
		carts:   carts,
		logger:  logger,
		config:  config,
		tlm:     telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all storefront routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/config", h.GetConfig)
	r.Get("/api/contact/links", h.GetContactLinks)
	r.Get("/api/contact/vcard", h.DownloadVCard)
	r.Get("/api/payment/links", h.GetPaymentLinks)
	r.Get("/api/gallery", h.GetGallery)

	r.Get("/api/menu", h.GetMenu)
	r.Get("/api/menu/{category}", h.GetMenuCategory)

	r.Post("/api/carts", h.CreateCart)
	r.Get("/api/carts/{id}", h.GetCart)
	r.Delete("/api/carts/{id}", h.DeleteCart)
	r.Post("/api/carts/{id}/items", h.AddCartItem)
	r.Patch("/api/carts/{id}/items/{itemID}", h.UpdateCartItem)
	r.Delete("/api/carts/{id}/items/{itemID}", h.RemoveCartItem)
	r.Get("/api/carts/{id}/whatsapp", h.GetCartWhatsApp)
}

// GetConfig handles GET /api/config.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetConfig")
	defer finish()

	cfg := h.loader.Load(r.Context())
	apt.RespondSuccess(w, cfg)
}

// contactLink is one person's deep links.
type contactLink struct {
	Label        string `json:"label"`
	PhoneDisplay string `json:"phone_display"`
	TelLink      string `json:"tel_link"`
	WhatsAppLink string `json:"whatsapp_link"`
}

// GetContactLinks handles GET /api/contact/links.
func (h *Handler) GetContactLinks(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetContactLinks")
	defer finish()

	cfg := h.loader.Load(r.Context())

	links := make([]contactLink, 0, len(cfg.ContactPersons))
	for _, p := range cfg.ContactPersons {
		links = append(links, contactLink{
			Label:        p.Label,
			PhoneDisplay: p.PhoneDisplay,
			TelLink:      p.TelLink(),
			WhatsAppLink: p.WhatsAppLink(cfg.WhatsApp.DefaultMessage),
		})
	}

	apt.RespondCollection(w, links, "contact/links")
}

// DownloadVCard handles GET /api/contact/vcard. The card downloads as a
// .vcf attachment named after the shop.
func (h *Handler) DownloadVCard(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DownloadVCard")
	defer finish()

	cfg := h.loader.Load(r.Context())
	body := vcard.Generate(cfg.VCard())

	w.Header().Set("Content-Type", vcard.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vcard.Filename(cfg.Name)))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, body)
}

// paymentLinks is the payment face payload: one pre-filled deep link per
// app, the QR image URL and the optional bank block.
type paymentLinks struct {
	UpiID   string            `json:"upi_id"`
	UpiName string            `json:"upi_name"`
	Links   map[string]string `json:"links"`
	Plans   []payment.Plan    `json:"plans"`
	QRURL   string            `json:"qr_url"`
	Bank    *payment.Bank     `json:"bank,omitempty"`
}

// GetPaymentLinks handles GET /api/payment/links?amount=N. A missing or
// malformed amount degrades to an open-amount link.
func (h *Handler) GetPaymentLinks(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetPaymentLinks")
	defer finish()
	log := h.log(r)

	cfg := h.loader.Load(r.Context())

	amount := 0.0
	if raw := r.URL.Query().Get("amount"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Debug("ignoring malformed amount", "amount", raw)
		} else {
			amount = v
		}
	}

	id := cfg.Payment
	links := make(map[string]string, len(payment.Apps()))
	plans := make([]payment.Plan, 0, len(payment.Apps()))
	for _, app := range payment.Apps() {
		plan := payment.PlanFor(app, id, amount)
		links[string(app)] = plan.AppURI
		plans = append(plans, plan)
	}

	apt.RespondSuccess(w, paymentLinks{
		UpiID:   id.UpiID,
		UpiName: id.UpiName,
		Links:   links,
		Plans:   plans,
		QRURL:   id.QRURL(amount),
		Bank:    id.Bank,
	})
}

// GetGallery handles GET /api/gallery.
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetGallery")
	defer finish()

	cfg := h.loader.Load(r.Context())
	apt.RespondSuccess(w, cfg.Gallery)
}

// GetMenu handles GET /api/menu.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetMenu")
	defer finish()

	apt.RespondCollection(w, h.catalog.Categories(), "menu")
}

// GetMenuCategory handles GET /api/menu/{category}.
func (h *Handler) GetMenuCategory(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetMenuCategory")
	defer finish()
	log := h.log(r)

	key := chi.URLParam(r, "category")
	cat, ok := h.catalog.Category(key)
	if !ok {
		log.Debug("unknown menu category", "category", key)
		apt.RespondError(w, http.StatusNotFound, "Menu category not found")
		return
	}

	apt.RespondSuccess(w, cat)
}

// Cart handlers

// cartView is the cart payload. The total is rendered as a string so a
// NaN total (malformed catalog price) survives JSON, mirroring what the
// order message shows.
type cartView struct {
	ID         uuid.UUID   `json:"id"`
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice string      `json:"total_price"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		ID:         c.ID(),
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: fmt.Sprintf("%.2f", c.TotalPrice()),
	}
}

// CreateCart handles POST /api/carts.
func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateCart")
	defer finish()

	c := h.carts.Create()
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, viewOf(c))
}

// GetCart handles GET /api/carts/{id}.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetCart")
	defer finish()
	log := h.log(r)

	c, ok := h.cartFromRequest(w, r, log)
	if !ok {
		return
	}
	apt.RespondSuccess(w, viewOf(c))
}

// DeleteCart handles DELETE /api/carts/{id}.
func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteCart")
	defer finish()
	log := h.log(r)

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}
	h.carts.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// AddCartItem handles POST /api/carts/{id}/items.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.AddCartItem")
	defer finish()
	log := h.log(r)

	c, ok := h.cartFromRequest(w, r, log)
	if !ok {
		return
	}

	var payload struct {
		ItemID string `json:"item_id"`
	}
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	item, ok := h.catalog.Item(payload.ItemID)
	if !ok {
		log.Debug("unknown menu item", "item_id", payload.ItemID)
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	c.Add(item)
	apt.RespondSuccess(w, viewOf(c))
}

// UpdateCartItem handles PATCH /api/carts/{id}/items/{itemID}. A quantity
// of zero or less removes the line.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateCartItem")
	defer finish()
	log := h.log(r)

	c, ok := h.cartFromRequest(w, r, log)
	if !ok {
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	c.UpdateQuantity(chi.URLParam(r, "itemID"), payload.Quantity)
	apt.RespondSuccess(w, viewOf(c))
}

// RemoveCartItem handles DELETE /api/carts/{id}/items/{itemID}.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.RemoveCartItem")
	defer finish()
	log := h.log(r)

	c, ok := h.cartFromRequest(w, r, log)
	if !ok {
		return
	}

	c.Remove(chi.URLParam(r, "itemID"))
	apt.RespondSuccess(w, viewOf(c))
}

// cartWhatsApp is the order handoff payload: the rendered message and the
// ready-to-open chat link.
type cartWhatsApp struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// GetCartWhatsApp handles GET /api/carts/{id}/whatsapp.
func (h *Handler) GetCartWhatsApp(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetCartWhatsApp")
	defer finish()
	log := h.log(r)

	c, ok := h.cartFromRequest(w, r, log)
	if !ok {
		return
	}

	cfg := h.loader.Load(r.Context())
	message := cart.Message(cfg.Name, c.Items(), c.TotalPrice())

	apt.RespondSuccess(w, cartWhatsApp{
		Message: message,
		Link:    phone.WhatsAppLink(cfg.WhatsApp.DefaultPhone, message),
	})
}

// Helper methods

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr, "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) cartFromRequest(w http.ResponseWriter, r *http.Request, log apt.Logger) (*cart.Cart, bool) {
	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return nil, false
	}

	c, ok := h.carts.Get(id)
	if !ok {
		apt.RespondError(w, http.StatusNotFound, "Cart session not found")
		return nil, false
	}
	return c, true
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, log apt.Logger, out interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return false
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return false
	}
	return true
}
