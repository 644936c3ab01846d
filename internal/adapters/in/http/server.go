// Package http is the inbound REST adapter: intake and checkout endpoints,
// the public blog, and the session-gated admin surface.
package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ceaseletter/internal/core/application/usecases/commands"
	"ceaseletter/internal/core/application/usecases/queries"
	"ceaseletter/internal/core/domain/model/blogpost"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/letter"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/core/domain/services"
	"ceaseletter/internal/core/ports"
	"ceaseletter/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	markOrderSentHandler     commands.MarkOrderSentCommandHandler
	failOrderHandler         commands.FailOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	resendOrderHandler       commands.ResendOrderCommandHandler
	createBlogPostHandler    commands.CreateBlogPostCommandHandler
	updateBlogPostHandler    commands.UpdateBlogPostCommandHandler
	setBlogPostStatusHandler commands.SetBlogPostStatusCommandHandler
	deleteBlogPostHandler    commands.DeleteBlogPostCommandHandler

	// Query handlers
	listOrdersHandler         queries.ListOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	exportOrdersHandler       queries.ExportOrdersQueryHandler
	getMetricsHandler         queries.GetMetricsQueryHandler
	listBlogPostsHandler      queries.ListBlogPostsQueryHandler
	listPublishedPostsHandler queries.ListPublishedPostsQueryHandler
	getBlogPostHandler        queries.GetBlogPostQueryHandler

	// Collaborators
	renderer services.LetterRenderer
	carrier  ports.MailCarrier
	verifier ports.AddressVerifier
	sessions *SessionManager
}

// ServerDeps bundles everything the server needs. Grouped into a struct
// because the handler list is long and all fields are required.
type ServerDeps struct {
	CreateOrderHandler       commands.CreateOrderCommandHandler
	ChangeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	MarkOrderSentHandler     commands.MarkOrderSentCommandHandler
	FailOrderHandler         commands.FailOrderCommandHandler
	CancelOrderHandler       commands.CancelOrderCommandHandler
	UpdateOrderHandler       commands.UpdateOrderCommandHandler
	ResendOrderHandler       commands.ResendOrderCommandHandler
	CreateBlogPostHandler    commands.CreateBlogPostCommandHandler
	UpdateBlogPostHandler    commands.UpdateBlogPostCommandHandler
	SetBlogPostStatusHandler commands.SetBlogPostStatusCommandHandler
	DeleteBlogPostHandler    commands.DeleteBlogPostCommandHandler

	ListOrdersHandler         queries.ListOrdersQueryHandler
	GetOrderHandler           queries.GetOrderQueryHandler
	ExportOrdersHandler       queries.ExportOrdersQueryHandler
	GetMetricsHandler         queries.GetMetricsQueryHandler
	ListBlogPostsHandler      queries.ListBlogPostsQueryHandler
	ListPublishedPostsHandler queries.ListPublishedPostsQueryHandler
	GetBlogPostHandler        queries.GetBlogPostQueryHandler

	Renderer services.LetterRenderer
	Carrier  ports.MailCarrier
	Verifier ports.AddressVerifier
	Sessions *SessionManager
}

// NewServer creates the HTTP server with the required command and query
// handlers and outbound collaborators.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createOrderHandler:       deps.CreateOrderHandler,
		changeOrderStatusHandler: deps.ChangeOrderStatusHandler,
		markOrderSentHandler:     deps.MarkOrderSentHandler,
		failOrderHandler:         deps.FailOrderHandler,
		cancelOrderHandler:       deps.CancelOrderHandler,
		updateOrderHandler:       deps.UpdateOrderHandler,
		resendOrderHandler:       deps.ResendOrderHandler,
		createBlogPostHandler:    deps.CreateBlogPostHandler,
		updateBlogPostHandler:    deps.UpdateBlogPostHandler,
		setBlogPostStatusHandler: deps.SetBlogPostStatusHandler,
		deleteBlogPostHandler:    deps.DeleteBlogPostHandler,

		listOrdersHandler:         deps.ListOrdersHandler,
		getOrderHandler:           deps.GetOrderHandler,
		exportOrdersHandler:       deps.ExportOrdersHandler,
		getMetricsHandler:         deps.GetMetricsHandler,
		listBlogPostsHandler:      deps.ListBlogPostsHandler,
		listPublishedPostsHandler: deps.ListPublishedPostsHandler,
		getBlogPostHandler:        deps.GetBlogPostHandler,

		renderer: deps.Renderer,
		carrier:  deps.Carrier,
		verifier: deps.Verifier,
		sessions: deps.Sessions,
	}
}

// RegisterRoutes wires the API surface onto the echo instance. Everything
// under /api/admin except login requires a valid session cookie.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/letters/generate", s.GenerateLetter)
	api.POST("/address/verify", s.VerifyAddress)
	api.POST("/orders/create", s.CreateOrder)
	api.POST("/orders/send", s.SendOrder)
	api.GET("/orders/:id", s.GetOrder)

	api.GET("/blog", s.ListPublishedPosts)
	api.GET("/blog/:slug", s.GetPublishedPost)

	api.POST("/admin/login", s.Login)

	admin := api.Group("/admin", s.sessions.RequireSession)
	admin.POST("/logout", s.Logout)
	admin.GET("/metrics", s.GetMetrics)
	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/export", s.ExportOrders)
	admin.GET("/orders/:id", s.GetAdminOrder)
	admin.PATCH("/orders/:id", s.UpdateOrder)
	admin.POST("/orders/:id/cancel", s.CancelOrder)
	admin.POST("/orders/:id/resend", s.ResendOrder)
	admin.GET("/blog", s.ListBlogPosts)
	admin.POST("/blog", s.CreateBlogPost)
	admin.GET("/blog/:id", s.GetBlogPost)
	admin.PATCH("/blog/:id", s.UpdateBlogPost)
	admin.DELETE("/blog/:id", s.DeleteBlogPost)
	admin.POST("/blog/:id/publish", s.SetBlogPostStatus)
}

// GenerateLetter handles POST /api/letters/generate - validates the intake
// form and returns the rendered letter preview.
func (s *Server) GenerateLetter(ctx echo.Context) error {
	var raw letter.RawForm
	if err := ctx.Bind(&raw); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	form, messages := letter.ParseForm(raw)
	if len(messages) > 0 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Form data is invalid.",
			Errors:  messages,
		})
	}

	letterText, err := s.renderer.Render(form)
	if err != nil {
		return internalError(ctx, "Failed to generate letter")
	}

	return ctx.JSON(http.StatusOK, generateLetterResponse{LetterText: letterText})
}

// VerifyAddress handles POST /api/address/verify - checks deliverability of
// the customer's mailing address before checkout.
func (s *Server) VerifyAddress(ctx echo.Context) error {
	var req verifyAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	verdict, err := s.verifier.VerifyAddress(ctx.Request().Context(), ports.AddressQuery{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
	})
	if err != nil {
		return internalError(ctx, "Address verification failed")
	}

	return ctx.JSON(http.StatusOK, verifyAddressResponse{
		Deliverable:    verdict.Deliverable,
		Deliverability: verdict.Deliverability,
		Normalized:     verdict.Normalized,
	})
}

// CreateOrder handles POST /api/orders/create - validates the intake form, renders
// the letter, and creates a paid order ready for dispatch.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var raw letter.RawForm
	if err := ctx.Bind(&raw); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	form, messages := letter.ParseForm(raw)
	if len(messages) > 0 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Form data is invalid.",
			Errors:  messages,
		})
	}

	letterText, err := s.renderer.Render(form)
	if err != nil {
		return internalError(ctx, "Failed to generate letter")
	}

	orderID := kernel.NewUUID()
	createCmd, err := commands.NewCreateOrderCommand(orderID, form, letterText)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}
	if err = s.createOrderHandler.Handle(ctx.Request().Context(), createCmd); err != nil {
		return internalError(ctx, "Failed to create order")
	}

	// Payment confirmation is synchronous in this flow: the checkout only
	// reaches this endpoint after a captured payment.
	payCmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Paid, order.ActorSystem)
	if err != nil {
		return internalError(ctx, "Failed to confirm payment")
	}
	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), payCmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/orders/:id - the customer-facing order status
// lookup used by the confirmation page.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// SendOrder handles POST /api/orders/send - dispatches a paid order through
// the mail carrier. Safe to retry: an order that already went out comes back
// with its original tracking number.
func (s *Server) SendOrder(ctx echo.Context) error {
	var req sendOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	o, err := s.fetchOrder(ctx, orderID)
	if err != nil {
		return s.domainError(ctx, err)
	}

	switch {
	case o.Status() == order.Canceled:
		return conflict(ctx, "Order is canceled")
	case o.Status() == order.Sent && o.TrackingNumber() != "":
		return ctx.JSON(http.StatusOK, newOrderResponse(o))
	case o.Status() != order.Paid && o.Status() != order.Queued:
		return conflict(ctx, fmt.Sprintf("Order is not ready to send: status is %s", o.Status()))
	}

	if o.Status() == order.Paid {
		queueCmd, cmdErr := commands.NewChangeOrderStatusCommand(orderID, order.Queued, order.ActorSystem)
		if cmdErr != nil {
			return internalError(ctx, "Failed to queue order")
		}
		if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), queueCmd); err != nil {
			return s.domainError(ctx, err)
		}
	}

	dispatch, sendErr := s.carrier.SendLetter(ctx.Request().Context(), ports.DispatchRequest{
		OrderID:    orderID,
		Form:       o.Form(),
		LetterText: o.LetterText(),
	})
	if sendErr != nil {
		failCmd, cmdErr := commands.NewFailOrderCommand(orderID, sendErr.Error())
		if cmdErr == nil {
			// Best effort; the dispatch failure is the error we report.
			_ = s.failOrderHandler.Handle(ctx.Request().Context(), failCmd)
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to send letter: " + sendErr.Error(),
		})
	}

	sentCmd, err := commands.NewMarkOrderSentCommand(orderID, dispatch.TrackingNumber, dispatch.LetterID, dispatch.MailingID)
	if err != nil {
		return internalError(ctx, "Failed to record dispatch")
	}
	if err = s.markOrderSentHandler.Handle(ctx.Request().Context(), sentCmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// Login handles POST /api/admin/login - exchanges the admin password for a
// session cookie.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if !s.sessions.Authenticate(req.Password) {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid password",
		})
	}

	ctx.SetCookie(s.sessions.SessionCookie())
	return ctx.NoContent(http.StatusNoContent)
}

// Logout handles POST /api/admin/logout - clears the session cookie.
func (s *Server) Logout(ctx echo.Context) error {
	ctx.SetCookie(s.sessions.ExpiredCookie())
	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/admin/orders - the filtered, paginated order
// listing behind the dashboard.
func (s *Server) ListOrders(ctx echo.Context) error {
	status, err := statusParam(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter")
	}

	query := queries.NewListOrdersQuery(
		ctx.QueryParam("q"),
		status,
		intParam(ctx.QueryParam("limit")),
		intParam(ctx.QueryParam("offset")),
	)

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, newListOrdersResponse(result))
}

// ExportOrders handles GET /api/admin/orders/export - streams the filtered
// order listing as a CSV attachment.
func (s *Server) ExportOrders(ctx echo.Context) error {
	status, err := statusParam(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter")
	}

	records, err := s.exportOrdersHandler.Handle(
		ctx.Request().Context(),
		queries.NewExportOrdersQuery(ctx.QueryParam("q"), status),
	)
	if err != nil {
		return internalError(ctx, "Failed to export orders")
	}

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	resp.Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	resp.WriteHeader(http.StatusOK)

	w := csv.NewWriter(resp)
	if err = w.Write(queries.ExportOrdersHeader); err != nil {
		return err
	}
	if err = w.WriteAll(records); err != nil {
		return err
	}
	return nil
}

// GetMetrics handles GET /api/admin/metrics - dashboard counters.
func (s *Server) GetMetrics(ctx echo.Context) error {
	result, err := s.getMetricsHandler.Handle(ctx.Request().Context(), queries.NewGetMetricsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve metrics")
	}

	return ctx.JSON(http.StatusOK, metricsResponse{
		Total:     result.Total,
		Today:     result.Today,
		Last7Days: result.Last7Days,
		ByStatus:  result.ByStatus,
	})
}

// GetAdminOrder handles GET /api/admin/orders/:id - the full order detail,
// audit trail included.
func (s *Server) GetAdminOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PATCH /api/admin/orders/:id - a status transition, a
// notes replacement, or both in one atomic edit.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.StatusFromString(*req.Status)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+*req.Status)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CancelOrder handles POST /api/admin/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ResendOrder handles POST /api/admin/orders/:id/resend - puts a failed
// order back into the dispatch pipeline.
func (s *Server) ResendOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewResendOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.resendOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ListBlogPosts handles GET /api/admin/blog - the admin content listing,
// drafts included.
func (s *Server) ListBlogPosts(ctx echo.Context) error {
	status := blogpost.Status(ctx.QueryParam("status"))
	if status != "" {
		if err := status.Validate(); err != nil {
			return badRequest(ctx, "Invalid status filter")
		}
	}

	query := queries.NewListBlogPostsQuery(
		ctx.QueryParam("q"),
		status,
		ctx.QueryParam("tag"),
		intParam(ctx.QueryParam("limit")),
		intParam(ctx.QueryParam("offset")),
	)

	result, err := s.listBlogPostsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve posts")
	}

	return ctx.JSON(http.StatusOK, newListBlogPostsResponse(result))
}

// CreateBlogPost handles POST /api/admin/blog.
func (s *Server) CreateBlogPost(ctx echo.Context) error {
	var req createBlogPostRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	postID := kernel.NewUUID()
	cmd, err := commands.NewCreateBlogPostCommand(postID, blogpost.NewPostInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Summary:   req.Summary,
		Content:   req.Content,
		Tags:      req.Tags,
		HeroImage: req.HeroImage,
		Publish:   req.Publish,
	})
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.createBlogPostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithPost(ctx, http.StatusCreated, postID)
}

// GetBlogPost handles GET /api/admin/blog/:id - the full post for the editor.
func (s *Server) GetBlogPost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid post id")
	}

	return s.respondWithPost(ctx, http.StatusOK, postID)
}

// UpdateBlogPost handles PATCH /api/admin/blog/:id. Absent fields are left
// untouched.
func (s *Server) UpdateBlogPost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid post id")
	}

	var req updateBlogPostRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *blogpost.Status
	if req.Status != nil {
		parsed := blogpost.Status(*req.Status)
		if validateErr := parsed.Validate(); validateErr != nil {
			return badRequest(ctx, "Invalid status: "+*req.Status)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateBlogPostCommand(postID, blogpost.UpdatePostInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Summary:   req.Summary,
		Content:   req.Content,
		Tags:      req.Tags,
		HeroImage: req.HeroImage,
		Status:    status,
	})
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.updateBlogPostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithPost(ctx, http.StatusOK, postID)
}

// DeleteBlogPost handles DELETE /api/admin/blog/:id. Deleting an unknown
// post succeeds.
func (s *Server) DeleteBlogPost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid post id")
	}

	cmd, err := commands.NewDeleteBlogPostCommand(postID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.deleteBlogPostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetBlogPostStatus handles POST /api/admin/blog/:id/publish - publishes or
// unpublishes a post.
func (s *Server) SetBlogPostStatus(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid post id")
	}

	var req publishBlogPostRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetBlogPostStatusCommand(postID, req.Publish)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if err = s.setBlogPostStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.domainError(ctx, err)
	}

	return s.respondWithPost(ctx, http.StatusOK, postID)
}

// ListPublishedPosts handles GET /api/blog - the public blog listing.
func (s *Server) ListPublishedPosts(ctx echo.Context) error {
	query := queries.NewListPublishedPostsQuery(
		ctx.QueryParam("tag"),
		intParam(ctx.QueryParam("limit")),
		intParam(ctx.QueryParam("offset")),
	)

	result, err := s.listPublishedPostsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve posts")
	}

	return ctx.JSON(http.StatusOK, newListBlogPostsResponse(result))
}

// GetPublishedPost handles GET /api/blog/:slug. Drafts behave as if they do
// not exist.
func (s *Server) GetPublishedPost(ctx echo.Context) error {
	query, err := queries.NewGetPublishedPostQuery(ctx.Param("slug"))
	if err != nil {
		return badRequest(ctx, "Invalid slug")
	}

	post, err := s.getBlogPostHandler.HandleBySlug(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newBlogPostResponse(post))
}

func (s *Server) fetchOrder(ctx echo.Context, orderID kernel.UUID) (*order.Order, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}
	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	o, err := s.fetchOrder(ctx, orderID)
	if err != nil {
		return s.domainError(ctx, err)
	}
	return ctx.JSON(code, newOrderResponse(o))
}

func (s *Server) respondWithPost(ctx echo.Context, code int, postID kernel.UUID) error {
	query, err := queries.NewGetBlogPostQuery(postID)
	if err != nil {
		return s.domainError(ctx, err)
	}

	post, err := s.getBlogPostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}
	return ctx.JSON(code, newBlogPostResponse(post))
}

// domainError maps application and domain errors onto HTTP statuses:
// missing objects to 404, rejected transitions to 409, validation failures
// to 400, anything else to 500.
func (s *Server) domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, order.ErrIllegalTransition):
		return conflict(ctx, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, errorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// statusParam parses an optional status query parameter; empty means no
// filter.
func statusParam(raw string) (order.Status, error) {
	if raw == "" {
		return order.Unknown, nil
	}
	return order.StatusFromString(raw)
}

// intParam parses an optional numeric query parameter; anything unparsable
// falls back to zero and lets the query constructor apply its defaults.
func intParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
