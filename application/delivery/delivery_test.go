package delivery_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appdelivery "github.com/bobursolih/market-backend/application/delivery"
	"github.com/bobursolih/market-backend/constant"
	auditmocks "github.com/bobursolih/market-backend/mocks/repository/audit"
	customermocks "github.com/bobursolih/market-backend/mocks/repository/customer"
	deliverymocks "github.com/bobursolih/market-backend/mocks/repository/delivery"
	ordermocks "github.com/bobursolih/market-backend/mocks/repository/order"
	txmocks "github.com/bobursolih/market-backend/mocks/repository/tx"
	"github.com/bobursolih/market-backend/model"
	cerr "github.com/bobursolih/market-backend/utils/errors"
)

type deliveryFields struct {
	txRepo       *txmocks.TxRepository
	deliveryRepo *deliverymocks.DeliveryRepository
	orderRepo    *ordermocks.OrderRepository
	customerRepo *customermocks.CustomerRepository
	auditRepo    *auditmocks.AuditRepository
}

func newDeliveryFields(t *testing.T) deliveryFields {
	return deliveryFields{
		txRepo:       txmocks.NewTxRepository(t),
		deliveryRepo: deliverymocks.NewDeliveryRepository(t),
		orderRepo:    ordermocks.NewOrderRepository(t),
		customerRepo: customermocks.NewCustomerRepository(t),
		auditRepo:    auditmocks.NewAuditRepository(t),
	}
}

func newDeliveryApp(f deliveryFields) appdelivery.DeliveryApp {
	return appdelivery.NewDeliveryApp(f.txRepo, f.deliveryRepo, f.orderRepo, f.customerRepo, f.auditRepo)
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func courierFixture() *model.Courier {
	lat, lng := 41.31, 69.28
	return &model.Courier{UserID: 9, Name: "Karim", IsAvailable: true, Latitude: &lat, Longitude: &lng}
}

func orderFixture(status constant.CustomerOrderStatus, courierID uint64) *model.CustomerOrder {
	o := &model.CustomerOrder{
		ID:         21,
		CustomerID: 3,
		Status:     status,
		TotalCost:  decimal.NewFromInt(25),
		AmountPaid: decimal.Zero,
	}
	if courierID != 0 {
		o.CourierID = &courierID
	}
	return o
}

func deliveryFixture() *model.Delivery {
	assigned := time.Now().Add(-30 * time.Minute)
	started := time.Now().Add(-20 * time.Minute)
	return &model.Delivery{
		ID:               501,
		OrderID:          21,
		CourierID:        9,
		AssignedAt:       assigned,
		StartedAt:        &started,
		EstimatedMinutes: 30,
		AmountPaid:       decimal.Zero,
	}
}

func TestDeliveryApp_AssignOrders(t *testing.T) {
	admin := model.Actor{ID: 1, Role: constant.RoleAdmin}
	courier := model.Actor{ID: 9, Role: constant.RoleCourier}

	tests := []struct {
		name     string
		actor    model.Actor
		req      *model.AssignDeliveryRequest
		mockCall func(f deliveryFields)
		wantIDs  []uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: batch of prepared orders moves to one courier atomically",
			actor: admin,
			req:   &model.AssignDeliveryRequest{CourierID: 9, OrderIDs: []uint64{21, 22}, EstimatedMinutes: 30},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(9)).Return(courierFixture(), nil).Once()

				for _, orderID := range []uint64{21, 22} {
					orderID := orderID
					f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, orderID).Return(&model.CustomerOrder{
						ID: orderID, CustomerID: 3, Status: constant.OrderStatusPrepared, TotalCost: decimal.NewFromInt(25),
					}, nil).Once()
					f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, orderID, constant.OrderStatusPrepared, constant.OrderStatusAssigned).Return(true, nil).Once()
					f.orderRepo.On("SetCourierTx", mock.Anything, tx, orderID, uint64(9)).Return(nil).Once()
				}

				clat, clng := 41.29, 69.25
				f.customerRepo.On("GetCustomerTx", mock.Anything, tx, uint64(3)).Return(&model.Customer{
					ID: 3, Latitude: &clat, Longitude: &clng,
				}, nil).Twice()

				f.deliveryRepo.On("InsertDeliveryTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Delivery) bool {
					return d.OrderID == 21 && d.CourierID == 9 && d.EstimatedMinutes == 30 &&
						!d.AssignedAt.IsZero() &&
						d.CourierLat != nil && *d.CourierLat == 41.31 &&
						d.CustomerLat != nil && *d.CustomerLat == 41.29
				})).Return(uint64(501), nil).Once()
				f.deliveryRepo.On("InsertDeliveryTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Delivery) bool {
					return d.OrderID == 22 && d.CourierID == 9
				})).Return(uint64(502), nil).Once()

				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionAssignDelivery &&
						e.PreviousStatus == string(constant.OrderStatusPrepared) &&
						e.NewStatus == string(constant.OrderStatusAssigned) &&
						e.Note == "assigned to Karim"
				})).Return(nil).Twice()

				f.deliveryRepo.On("SetCourierAvailabilityTx", mock.Anything, tx, uint64(9), false).Return(nil).Once()
			},
			wantIDs: []uint64{501, 502},
		},
		{
			name:    "error: couriers do not assign themselves",
			actor:   courier,
			req:     &model.AssignDeliveryRequest{CourierID: 9, OrderIDs: []uint64{21}, EstimatedMinutes: 30},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:    "error: no orders",
			actor:   admin,
			req:     &model.AssignDeliveryRequest{CourierID: 9, EstimatedMinutes: 30},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: duplicate order ids",
			actor:   admin,
			req:     &model.AssignDeliveryRequest{CourierID: 9, OrderIDs: []uint64{21, 21}, EstimatedMinutes: 30},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: zero estimate",
			actor:   admin,
			req:     &model.AssignDeliveryRequest{CourierID: 9, OrderIDs: []uint64{21}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: unknown courier",
			actor: admin,
			req:   &model.AssignDeliveryRequest{CourierID: 99, OrderIDs: []uint64{21}, EstimatedMinutes: 30},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(99)).Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: order not prepared aborts the whole batch",
			actor: admin,
			req:   &model.AssignDeliveryRequest{CourierID: 9, OrderIDs: []uint64{21}, EstimatedMinutes: 30},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(9)).Return(courierFixture(), nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusPending, 0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name:  "error: concurrent assignment loses the status race",
			actor: admin,
			req:   &model.AssignDeliveryRequest{CourierID: 9, OrderIDs: []uint64{21}, EstimatedMinutes: 30},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(9)).Return(courierFixture(), nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusPrepared, 0), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusPrepared, constant.OrderStatusAssigned).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStateConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			got, err := app.AssignOrders(context.Background(), tt.actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AssignOrders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("deliveries = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Fatalf("delivery[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestDeliveryApp_StartDelivery(t *testing.T) {
	courier := model.Actor{ID: 9, Role: constant.RoleCourier}

	tests := []struct {
		name     string
		actor    model.Actor
		req      *model.StartDeliveryRequest
		mockCall func(f deliveryFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: assigned order goes on the way",
			actor: courier,
			req:   &model.StartDeliveryRequest{OrderIDs: []uint64{21}},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusAssigned, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusAssigned, constant.OrderStatusOnTheWay).Return(true, nil).Once()

				d := deliveryFixture()
				d.StartedAt = nil
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(d, nil).Once()
				f.deliveryRepo.On("UpdateDeliveryStartTx", mock.Anything, tx, uint64(501), mock.Anything).Return(nil).Once()

				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionStartDelivery &&
						e.NewStatus == string(constant.OrderStatusOnTheWay)
				})).Return(nil).Once()
			},
		},
		{
			name:    "error: admins do not drive",
			actor:   model.Actor{ID: 1, Role: constant.RoleAdmin},
			req:     &model.StartDeliveryRequest{OrderIDs: []uint64{21}},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:  "error: someone else's order",
			actor: courier,
			req:   &model.StartDeliveryRequest{OrderIDs: []uint64{21}},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusAssigned, 7), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:  "error: order not assigned yet",
			actor: courier,
			req:   &model.StartDeliveryRequest{OrderIDs: []uint64{21}},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			got, err := app.StartDelivery(context.Background(), tt.actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("StartDelivery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if len(got) != 1 || got[0].StartedAt == nil {
				t.Fatalf("StartDelivery() = %+v, want one started delivery", got)
			}
		})
	}
}

func TestDeliveryApp_UpdateEstimate(t *testing.T) {
	courier := model.Actor{ID: 9, Role: constant.RoleCourier}

	tests := []struct {
		name     string
		actor    model.Actor
		req      *model.UpdateEstimateRequest
		mockCall func(f deliveryFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: courier revises the promise with a reason",
			actor: courier,
			req:   &model.UpdateEstimateRequest{EstimatedMinutes: 45, Reason: "traffic"},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("UpdateDeliveryEstimateTx", mock.Anything, tx, uint64(501), int64(45), "traffic").Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionUpdateEstimate &&
						e.PreviousStatus == e.NewStatus &&
						e.Note == "traffic"
				})).Return(nil).Once()
			},
		},
		{
			name:  "success: admin revises on behalf of the courier",
			actor: model.Actor{ID: 1, Role: constant.RoleAdmin},
			req:   &model.UpdateEstimateRequest{EstimatedMinutes: 60},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusAssigned, 9), nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("UpdateDeliveryEstimateTx", mock.Anything, tx, uint64(501), int64(60), "").Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "error: zero estimate",
			actor:   courier,
			req:     &model.UpdateEstimateRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: someone else's delivery",
			actor: courier,
			req:   &model.UpdateEstimateRequest{EstimatedMinutes: 45},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 7), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:  "error: delivery already closed",
			actor: courier,
			req:   &model.UpdateEstimateRequest{EstimatedMinutes: 45},
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusShipped, 9), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			got, err := app.UpdateEstimate(context.Background(), tt.actor, 21, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateEstimate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.EstimatedMinutes != tt.req.EstimatedMinutes {
				t.Fatalf("EstimatedMinutes = %d, want %d", got.EstimatedMinutes, tt.req.EstimatedMinutes)
			}
			if got.DelayReason != tt.req.Reason {
				t.Fatalf("DelayReason = %q, want %q", got.DelayReason, tt.req.Reason)
			}
		})
	}
}

func TestDeliveryApp_CompleteDelivery(t *testing.T) {
	courier := model.Actor{ID: 9, Role: constant.RoleCourier}

	tests := []struct {
		name       string
		actor      model.Actor
		amountPaid decimal.Decimal
		mockCall   func(f deliveryFields)
		wantMethod constant.PaymentMethod
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: full cash settles without touching the balance",
			actor:      courier,
			amountPaid: decimal.NewFromInt(25),
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusOnTheWay, constant.OrderStatusShipped).Return(true, nil).Once()
				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(9)).Return(courierFixture(), nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("CompleteDeliveryTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Delivery) bool {
					return d.ID == 501 &&
						d.PaymentMethod == constant.PaymentMethodCash &&
						d.AmountPaid.Equal(decimal.NewFromInt(25)) &&
						d.EndedAt != nil &&
						d.ActualMinutes != nil && *d.ActualMinutes >= 0
				})).Return(nil).Once()
				f.orderRepo.On("UpdatePaymentTx", mock.Anything, tx, uint64(21), constant.PaymentMethodCash, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.NewFromInt(25))
				})).Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionCompleteDelivery && e.Note == "paid 25 of 25"
				})).Return(nil).Once()
				f.deliveryRepo.On("CountActiveByCourierTx", mock.Anything, tx, uint64(9)).Return(int64(0), nil).Once()
				f.deliveryRepo.On("SetCourierAvailabilityTx", mock.Anything, tx, uint64(9), true).Return(nil).Once()
			},
			wantMethod: constant.PaymentMethodCash,
		},
		{
			name:       "success: nothing collected lands as debt on the balance",
			actor:      courier,
			amountPaid: decimal.Zero,
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusOnTheWay, constant.OrderStatusShipped).Return(true, nil).Once()
				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(9)).Return(courierFixture(), nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("CompleteDeliveryTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Delivery) bool {
					return d.PaymentMethod == constant.PaymentMethodDebt && d.AmountPaid.IsZero()
				})).Return(nil).Once()
				f.orderRepo.On("UpdatePaymentTx", mock.Anything, tx, uint64(21), constant.PaymentMethodDebt, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.IsZero()
				})).Return(nil).Once()
				f.customerRepo.On("AdjustBalanceTx", mock.Anything, tx, uint64(3), mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.NewFromInt(25))
				})).Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionCompleteDelivery && e.Note == "paid 0 of 25"
				})).Return(nil).Once()
				// other orders still on the road keep the courier busy
				f.deliveryRepo.On("CountActiveByCourierTx", mock.Anything, tx, uint64(9)).Return(int64(2), nil).Once()
			},
			wantMethod: constant.PaymentMethodDebt,
		},
		{
			name:       "success: partial payment posts the rest as debt",
			actor:      courier,
			amountPaid: decimal.NewFromInt(10),
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusOnTheWay, constant.OrderStatusShipped).Return(true, nil).Once()
				f.deliveryRepo.On("GetCourierForUpdateTx", mock.Anything, tx, uint64(9)).Return(courierFixture(), nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("CompleteDeliveryTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Delivery) bool {
					return d.PaymentMethod == constant.PaymentMethodPartial && d.AmountPaid.Equal(decimal.NewFromInt(10))
				})).Return(nil).Once()
				f.orderRepo.On("UpdatePaymentTx", mock.Anything, tx, uint64(21), constant.PaymentMethodPartial, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.NewFromInt(10))
				})).Return(nil).Once()
				f.customerRepo.On("AdjustBalanceTx", mock.Anything, tx, uint64(3), mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.NewFromInt(15))
				})).Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionCompleteDelivery && e.Note == "paid 10 of 25"
				})).Return(nil).Once()
				f.deliveryRepo.On("CountActiveByCourierTx", mock.Anything, tx, uint64(9)).Return(int64(0), nil).Once()
				f.deliveryRepo.On("SetCourierAvailabilityTx", mock.Anything, tx, uint64(9), true).Return(nil).Once()
			},
			wantMethod: constant.PaymentMethodPartial,
		},
		{
			name:       "error: collected more than the order total",
			actor:      courier,
			amountPaid: decimal.NewFromInt(30),
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:       "error: negative amount",
			actor:      courier,
			amountPaid: decimal.NewFromInt(-1),
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:       "error: only the courier at the door settles",
			actor:      model.Actor{ID: 1, Role: constant.RoleAdmin},
			amountPaid: decimal.NewFromInt(25),
			wantErr:    true,
			errCode:    constant.ErrUnauthorize,
		},
		{
			name:       "error: order not on the way",
			actor:      courier,
			amountPaid: decimal.NewFromInt(25),
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusAssigned, 9), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name:       "error: completion races a concurrent return",
			actor:      courier,
			amountPaid: decimal.NewFromInt(25),
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusOnTheWay, constant.OrderStatusShipped).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStateConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			got, err := app.CompleteDelivery(context.Background(), tt.actor, 21, tt.amountPaid)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompleteDelivery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.OrderStatusShipped {
				t.Fatalf("Status = %s, want %s", got.Status, constant.OrderStatusShipped)
			}
			if got.PaymentMethod != tt.wantMethod {
				t.Fatalf("PaymentMethod = %s, want %s", got.PaymentMethod, tt.wantMethod)
			}
		})
	}
}

func TestDeliveryApp_ReturnDelivery(t *testing.T) {
	courier := model.Actor{ID: 9, Role: constant.RoleCourier}

	tests := []struct {
		name     string
		actor    model.Actor
		note     string
		mockCall func(f deliveryFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: courier brings the goods back",
			actor: courier,
			note:  "customer unreachable",
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusOnTheWay, constant.OrderStatusReturned).Return(true, nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("CompleteDeliveryTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Delivery) bool {
					return d.ID == 501 && d.AmountPaid.IsZero() && d.EndedAt != nil
				})).Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.MatchedBy(func(e *model.ActivityLog) bool {
					return e.Action == constant.ActionReturnDelivery &&
						e.NewStatus == string(constant.OrderStatusReturned) &&
						e.Note == "customer unreachable"
				})).Return(nil).Once()
				f.deliveryRepo.On("CountActiveByCourierTx", mock.Anything, tx, uint64(9)).Return(int64(0), nil).Once()
				f.deliveryRepo.On("SetCourierAvailabilityTx", mock.Anything, tx, uint64(9), true).Return(nil).Once()
			},
		},
		{
			name:  "success: admin forces the return, courier stays busy",
			actor: model.Actor{ID: 1, Role: constant.RoleAdmin},
			note:  "wrong address on the order",
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 9), nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(21), constant.OrderStatusOnTheWay, constant.OrderStatusReturned).Return(true, nil).Once()
				f.deliveryRepo.On("GetActiveDeliveryTx", mock.Anything, tx, uint64(21)).Return(deliveryFixture(), nil).Once()
				f.deliveryRepo.On("CompleteDeliveryTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.auditRepo.On("InsertLogTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				// availability is keyed on the delivery's courier, not the actor
				f.deliveryRepo.On("CountActiveByCourierTx", mock.Anything, tx, uint64(9)).Return(int64(1), nil).Once()
			},
		},
		{
			name:    "error: workers do not return deliveries",
			actor:   model.Actor{ID: 2, Role: constant.RoleWorker},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:  "error: someone else's delivery",
			actor: courier,
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusOnTheWay, 7), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:  "error: nothing on the road to return",
			actor: courier,
			mockCall: func(f deliveryFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(21)).Return(orderFixture(constant.OrderStatusAssigned, 9), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			got, err := app.ReturnDelivery(context.Background(), tt.actor, 21, tt.note)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReturnDelivery() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.OrderStatusReturned {
				t.Fatalf("Status = %s, want %s", got.Status, constant.OrderStatusReturned)
			}
		})
	}
}

func TestDeliveryApp_UpdateCourierLocation(t *testing.T) {
	tests := []struct {
		name     string
		actor    model.Actor
		mockCall func(f deliveryFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			actor: model.Actor{ID: 9, Role: constant.RoleCourier},
			mockCall: func(f deliveryFields) {
				f.deliveryRepo.On("UpdateCourierLocation", mock.Anything, uint64(9), 41.31, 69.28).Return(nil).Once()
			},
		},
		{
			name:    "error: not a courier",
			actor:   model.Actor{ID: 2, Role: constant.RoleWorker},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			err := app.UpdateCourierLocation(context.Background(), tt.actor, &model.CourierLocationRequest{Latitude: 41.31, Longitude: 69.28})
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateCourierLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestDeliveryApp_ListCourierOrders(t *testing.T) {
	tests := []struct {
		name     string
		actor    model.Actor
		mockCall func(f deliveryFields)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: courier sees their active orders",
			actor: model.Actor{ID: 9, Role: constant.RoleCourier},
			mockCall: func(f deliveryFields) {
				f.orderRepo.On("ListActiveByCourier", mock.Anything, uint64(9)).Return([]model.CustomerOrder{
					{ID: 21, Status: constant.OrderStatusAssigned},
					{ID: 22, Status: constant.OrderStatusOnTheWay},
				}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name:    "error: customers have no route list",
			actor:   model.Actor{ID: 3, Role: constant.RoleCustomer},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newDeliveryFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newDeliveryApp(f)

			got, err := app.ListCourierOrders(context.Background(), tt.actor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListCourierOrders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("orders = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
