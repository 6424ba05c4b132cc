package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	customerapp "github.com/bobursolih/market-backend/application/customer"
	deliveryapp "github.com/bobursolih/market-backend/application/delivery"
	inventoryapp "github.com/bobursolih/market-backend/application/inventory"
	orderapp "github.com/bobursolih/market-backend/application/order"
	productapp "github.com/bobursolih/market-backend/application/product"
	supplierapp "github.com/bobursolih/market-backend/application/supplier"
	userapp "github.com/bobursolih/market-backend/application/user"
	"github.com/bobursolih/market-backend/cmd/config"
	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
	utilsContext "github.com/bobursolih/market-backend/utils/context"
	"github.com/bobursolih/market-backend/utils/errors"
	validatorx "github.com/bobursolih/market-backend/utils/validator"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ProductApp   productapp.ProductApp
	InventoryApp inventoryapp.InventoryApp
	OrderApp     orderapp.OrderApp
	SupplierApp  supplierapp.SupplierApp
	DeliveryApp  deliveryapp.DeliveryApp
	CustomerApp  customerapp.CustomerApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	r := mux.NewRouter()

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	r.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	r.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	r.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/low-stock", rh.ListLowStock).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}/batches", rh.ListProductBatches).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}/allocation", rh.PreviewAllocation).Methods(http.MethodGet)

	r.HandleFunc("/batches", rh.CreateBatch).Methods(http.MethodPost)
	r.HandleFunc("/batches/near-expiry", rh.ListNearExpiry).Methods(http.MethodGet)
	r.HandleFunc("/batches/conflicts", rh.CheckDateConflicts).Methods(http.MethodPost)

	r.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}", rh.GetOrder).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/transition", rh.TransitionOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id:[0-9]+}/payment", rh.PayOrderDebt).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id:[0-9]+}/activity", rh.OrderActivity).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/deliveries", rh.OrderDeliveries).Methods(http.MethodGet)

	r.HandleFunc("/supplier-orders", rh.CreateSupplierOrder).Methods(http.MethodPost)
	r.HandleFunc("/supplier-orders", rh.ListSupplierOrders).Methods(http.MethodGet)
	r.HandleFunc("/supplier-orders/{id:[0-9]+}", rh.GetSupplierOrder).Methods(http.MethodGet)
	r.HandleFunc("/supplier-orders/{id:[0-9]+}/transition", rh.TransitionSupplierOrder).Methods(http.MethodPost)
	r.HandleFunc("/supplier-orders/{id:[0-9]+}/activity", rh.SupplierOrderActivity).Methods(http.MethodGet)
	r.HandleFunc("/suppliers", rh.ListSuppliers).Methods(http.MethodGet)

	r.HandleFunc("/deliveries/assign", rh.AssignDeliveries).Methods(http.MethodPost)
	r.HandleFunc("/deliveries/start", rh.StartDeliveries).Methods(http.MethodPost)
	r.HandleFunc("/deliveries/{id:[0-9]+}/estimate", rh.UpdateDeliveryEstimate).Methods(http.MethodPut)
	r.HandleFunc("/deliveries/{id:[0-9]+}/complete", rh.CompleteDelivery).Methods(http.MethodPost)
	r.HandleFunc("/deliveries/{id:[0-9]+}/return", rh.ReturnDelivery).Methods(http.MethodPost)

	r.HandleFunc("/couriers", rh.ListCouriers).Methods(http.MethodGet)
	r.HandleFunc("/couriers/orders", rh.CourierOrders).Methods(http.MethodGet)
	r.HandleFunc("/couriers/location", rh.UpdateCourierLocation).Methods(http.MethodPut)

	r.HandleFunc("/customers", rh.ListCustomers).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}", rh.GetCustomer).Methods(http.MethodGet)

	// Internal service-to-service routes, gated by static API key
	internal := r.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/customers", rh.InternalCreateCustomer).Methods(http.MethodPost)
	internal.HandleFunc("/orders", rh.InternalCreateOrder).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{id:[0-9]+}", rh.InternalGetOrder).Methods(http.MethodGet)
	internal.HandleFunc("/orders/{id:[0-9]+}/cancel", rh.InternalCancelOrder).Methods(http.MethodPost)

	// middleware
	r.Use(LoggingMiddleware())
	r.Use(AuthMiddleware(rh.UserApp))

	return r
}

// Register handler
// @Summary Register user
// @Description Register a new staff user (admin, worker, courier or supplier)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Invalidate the current session token
// @Tags Auth
// @Produce json
// @Success 200 {object} response
// @Failure 401 {object} errors.CustomError
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListProducts handler
// @Summary List products
// @Description List catalog products with aggregate stock and active lot counts
// @Tags Product
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePaging(r)
	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListLowStock handler
// @Summary List low stock products
// @Description Products at or below their low stock threshold
// @Tags Product
// @Produce json
// @Success 200 {array} model.Product
// @Router /products/low-stock [get]
func (s *RestHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}
	res, err := s.ProductApp.ListLowStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Description Product detail by id
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.CustomError
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListProductBatches handler
// @Summary List product batches
// @Description All lots of a product, including depleted and expired ones
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} model.Batch
// @Failure 404 {object} errors.CustomError
// @Router /products/{id}/batches [get]
func (s *RestHandler) ListProductBatches(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.InventoryApp.ListProductBatches(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PreviewAllocation handler
// @Summary Preview FIFO allocation
// @Description Plan which lots would cover a quantity without touching stock
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity query int true "Required quantity"
// @Success 200 {object} model.AllocationResult
// @Failure 404 {object} errors.CustomError
// @Router /products/{id}/allocation [get]
func (s *RestHandler) PreviewAllocation(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	quantity, err := strconv.ParseInt(r.URL.Query().Get("quantity"), 10, 64)
	if err != nil || quantity <= 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.InventoryApp.AllocateFIFO(r.Context(), id, quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateBatch handler
// @Summary Register a batch
// @Description Register an incoming lot and bump the product stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.CreateBatchRequest true "Batch"
// @Success 200 {object} model.Batch
// @Failure 400 {object} errors.CustomError
// @Router /batches [post]
func (s *RestHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}

	var req model.CreateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CreateBatch(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListNearExpiry handler
// @Summary List near expiry batches
// @Description Active lots expiring inside the configured window
// @Tags Inventory
// @Produce json
// @Success 200 {array} model.Batch
// @Router /batches/near-expiry [get]
func (s *RestHandler) ListNearExpiry(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}
	res, err := s.InventoryApp.ListNearExpiry(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CheckDateConflicts handler
// @Summary Check batch date conflicts
// @Description Compare incoming lot dates against active lots of the product
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.DateConflictRequest true "Incoming lot dates"
// @Success 200 {object} model.DateConflict
// @Router /batches/conflicts [post]
func (s *RestHandler) CheckDateConflicts(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}

	var req model.DateConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.CheckDateConflicts(r.Context(), req.ProductID, req.ProductionDate, req.ExpiryDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateOrder handler
// @Summary Create customer order
// @Description Create an order priced at current sell prices, stock is not touched
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Order"
// @Success 200 {object} model.CustomerOrder
// @Failure 400 {object} errors.CustomError
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List customer orders
// @Description Orders filtered by status, newest first
// @Tags Order
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.OrderListResponse
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker, constant.RoleCourier); !ok {
		return
	}
	page, perPage := parsePaging(r)
	status := constant.CustomerOrderStatus(r.URL.Query().Get("status"))
	res, err := s.OrderApp.ListOrders(r.Context(), status, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get customer order
// @Description Order detail with items and allocation snapshot
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.CustomerOrder
// @Failure 404 {object} errors.CustomError
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker, constant.RoleCourier); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// TransitionOrder handler
// @Summary Transition customer order
// @Description Move an order to a target status, completing preparation returns the allocation
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.OrderTransitionRequest true "Target status"
// @Success 200 {object} model.PreparationResult
// @Failure 409 {object} errors.CustomError
// @Router /orders/{id}/transition [post]
func (s *RestHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.OrderTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.Transition(r.Context(), actor, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PayOrderDebt handler
// @Summary Pay order debt
// @Description Record a payment against an order delivered on debt
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.PayDebtRequest true "Payment"
// @Success 200 {object} model.CustomerOrder
// @Failure 409 {object} errors.CustomError
// @Router /orders/{id}/payment [post]
func (s *RestHandler) PayOrderDebt(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.PayDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.PayDebt(r.Context(), actor, id, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// OrderActivity handler
// @Summary Order activity log
// @Description Append-only history of everything done to the order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} model.ActivityLog
// @Router /orders/{id}/activity [get]
func (s *RestHandler) OrderActivity(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.OrderApp.ListActivity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// OrderDeliveries handler
// @Summary Order deliveries
// @Description Delivery attempts recorded for the order
// @Tags Delivery
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} model.Delivery
// @Router /orders/{id}/deliveries [get]
func (s *RestHandler) OrderDeliveries(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleCourier); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.DeliveryApp.GetOrderDeliveries(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateSupplierOrder handler
// @Summary Create supplier order
// @Description Request a restock from a supplier, priced off the supplier price list
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body model.CreateSupplierOrderRequest true "Supplier order"
// @Success 200 {object} model.SupplierOrder
// @Failure 400 {object} errors.CustomError
// @Router /supplier-orders [post]
func (s *RestHandler) CreateSupplierOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}

	var req model.CreateSupplierOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SupplierApp.CreateSupplierOrder(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListSupplierOrders handler
// @Summary List supplier orders
// @Tags Supplier
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.SupplierOrderListResponse
// @Router /supplier-orders [get]
func (s *RestHandler) ListSupplierOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker); !ok {
		return
	}
	page, perPage := parsePaging(r)
	status := constant.SupplierOrderStatus(r.URL.Query().Get("status"))
	res, err := s.SupplierApp.ListSupplierOrders(r.Context(), status, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSupplierOrder handler
// @Summary Get supplier order
// @Description Supplier order detail with line decisions
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier order ID"
// @Success 200 {object} model.SupplierOrder
// @Failure 404 {object} errors.CustomError
// @Router /supplier-orders/{id} [get]
func (s *RestHandler) GetSupplierOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r, constant.RoleAdmin, constant.RoleWorker, constant.RoleSupplier)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.SupplierApp.GetSupplierOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	// suppliers only see their own orders
	if actor.Role == constant.RoleSupplier && (actor.SupplierID == nil || *actor.SupplierID != res.SupplierID) {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	writeSuccess(w, res)
}

// TransitionSupplierOrder handler
// @Summary Transition supplier order
// @Description Record the supplier response, confirm a partial response, or receive a delivery
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path int true "Supplier order ID"
// @Param request body model.SupplierTransitionRequest true "Target status"
// @Success 200 {object} model.SupplierDeliveryResult
// @Failure 409 {object} errors.CustomError
// @Router /supplier-orders/{id}/transition [post]
func (s *RestHandler) TransitionSupplierOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SupplierTransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SupplierApp.Transition(r.Context(), actor, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SupplierOrderActivity handler
// @Summary Supplier order activity log
// @Tags Supplier
// @Produce json
// @Param id path int true "Supplier order ID"
// @Success 200 {array} model.ActivityLog
// @Router /supplier-orders/{id}/activity [get]
func (s *RestHandler) SupplierOrderActivity(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.SupplierApp.ListActivity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListSuppliers handler
// @Summary List suppliers
// @Tags Supplier
// @Produce json
// @Success 200 {array} model.Supplier
// @Router /suppliers [get]
func (s *RestHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin); !ok {
		return
	}
	res, err := s.SupplierApp.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AssignDeliveries handler
// @Summary Assign orders to a courier
// @Description Move prepared orders to Assigned and open delivery records
// @Tags Delivery
// @Accept json
// @Produce json
// @Param request body model.AssignDeliveryRequest true "Assignment"
// @Success 200 {array} model.Delivery
// @Failure 409 {object} errors.CustomError
// @Router /deliveries/assign [post]
func (s *RestHandler) AssignDeliveries(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}

	var req model.AssignDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DeliveryApp.AssignOrders(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// StartDeliveries handler
// @Summary Start deliveries
// @Description Courier marks assigned orders as on the way
// @Tags Delivery
// @Accept json
// @Produce json
// @Param request body model.StartDeliveryRequest true "Orders to start"
// @Success 200 {array} model.Delivery
// @Failure 409 {object} errors.CustomError
// @Router /deliveries/start [post]
func (s *RestHandler) StartDeliveries(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}

	var req model.StartDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DeliveryApp.StartDelivery(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateDeliveryEstimate handler
// @Summary Update delivery estimate
// @Description Revise the promised minutes on a running delivery
// @Tags Delivery
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateEstimateRequest true "New estimate"
// @Success 200 {object} model.Delivery
// @Router /deliveries/{id}/estimate [put]
func (s *RestHandler) UpdateDeliveryEstimate(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateEstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DeliveryApp.UpdateEstimate(r.Context(), actor, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CompleteDelivery handler
// @Summary Complete delivery
// @Description Courier hands over the order and records what was collected
// @Tags Delivery
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.CompleteDeliveryRequest true "Collected amount"
// @Success 200 {object} model.CustomerOrder
// @Failure 409 {object} errors.CustomError
// @Router /deliveries/{id}/complete [post]
func (s *RestHandler) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CompleteDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DeliveryApp.CompleteDelivery(r.Context(), actor, id, req.AmountPaid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReturnDelivery handler
// @Summary Return delivery
// @Description Courier brings the order back undelivered
// @Tags Delivery
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.ReturnDeliveryRequest true "Return note"
// @Success 200 {object} model.CustomerOrder
// @Failure 409 {object} errors.CustomError
// @Router /deliveries/{id}/return [post]
func (s *RestHandler) ReturnDelivery(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ReturnDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DeliveryApp.ReturnDelivery(r.Context(), actor, id, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCouriers handler
// @Summary List couriers
// @Description Couriers with availability and last known location
// @Tags Delivery
// @Produce json
// @Success 200 {array} model.Courier
// @Router /couriers [get]
func (s *RestHandler) ListCouriers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin); !ok {
		return
	}
	res, err := s.DeliveryApp.ListCouriers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CourierOrders handler
// @Summary Courier active orders
// @Description Orders currently assigned to or carried by the calling courier
// @Tags Delivery
// @Produce json
// @Success 200 {array} model.CustomerOrder
// @Router /couriers/orders [get]
func (s *RestHandler) CourierOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}
	res, err := s.DeliveryApp.ListCourierOrders(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCourierLocation handler
// @Summary Update courier location
// @Tags Delivery
// @Accept json
// @Produce json
// @Param request body model.CourierLocationRequest true "Location"
// @Success 200 {object} response
// @Router /couriers/location [put]
func (s *RestHandler) UpdateCourierLocation(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireRoles(w, r)
	if !ok {
		return
	}

	var req model.CourierLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.DeliveryApp.UpdateCourierLocation(r.Context(), actor, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListCustomers handler
// @Summary List customers
// @Description Customers with their debt balances
// @Tags Customer
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.CustomerListResponse
// @Router /customers [get]
func (s *RestHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin); !ok {
		return
	}
	page, perPage := parsePaging(r)
	res, err := s.CustomerApp.ListCustomers(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCustomer handler
// @Summary Get customer
// @Tags Customer
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} model.Customer
// @Failure 404 {object} errors.CustomError
// @Router /customers/{id} [get]
func (s *RestHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRoles(w, r, constant.RoleAdmin); !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.CustomerApp.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InternalCreateCustomer handler
// @Summary Create customer (internal)
// @Description Storefront service registers a customer record
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.CreateCustomerRequest true "Customer"
// @Success 200 {object} model.Customer
// @Failure 400 {object} errors.CustomError
// @Router /internal/customers [post]
func (s *RestHandler) InternalCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CustomerApp.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InternalCreateOrder handler
// @Summary Create order as customer (internal)
// @Description Storefront service places an order on behalf of a customer
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Order"
// @Success 200 {object} model.CustomerOrder
// @Failure 400 {object} errors.CustomError
// @Router /internal/orders [post]
func (s *RestHandler) InternalCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	actor := model.Actor{ID: req.CustomerID, Role: constant.RoleCustomer}
	res, err := s.OrderApp.CreateOrder(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InternalGetOrder handler
// @Summary Get order (internal)
// @Tags Internal
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.CustomerOrder
// @Failure 404 {object} errors.CustomError
// @Router /internal/orders/{id} [get]
func (s *RestHandler) InternalGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InternalCancelOrder handler
// @Summary Cancel order as customer (internal)
// @Description Storefront service cancels a customer's own order, allowed until it is picked
// @Tags Internal
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.InternalCancelRequest true "Cancel"
// @Success 200 {object} model.CustomerOrder
// @Failure 409 {object} errors.CustomError
// @Router /internal/orders/{id}/cancel [post]
func (s *RestHandler) InternalCancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.InternalCancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	actor := model.Actor{ID: req.CustomerID, Role: constant.RoleCustomer}
	res, err := s.OrderApp.CancelOrder(r.Context(), actor, id, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// requireRoles pulls the actor off the context and, when roles are given,
// rejects everyone else.
func requireRoles(w http.ResponseWriter, r *http.Request, roles ...constant.Role) (model.Actor, bool) {
	actor, ok := utilsContext.GetActor(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return model.Actor{}, false
	}
	if len(roles) == 0 {
		return actor, true
	}
	for _, role := range roles {
		if actor.Role == role {
			return actor, true
		}
	}
	writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
	return model.Actor{}, false
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

func parsePaging(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}
