package businesssvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	businessdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/dto"
	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// BusinessService là cấu trúc chứa các phương thức liên quan đến tenant (business)
type BusinessService struct {
	*basesvc.BaseServiceMongoImpl[businessmodels.Business]
}

// NewBusinessService tạo mới BusinessService
func NewBusinessService() (*BusinessService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("failed to get businesses collection: %v", common.ErrNotFound)
	}
	return &BusinessService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[businessmodels.Business](coll),
	}, nil
}

// FindBySubdomain tìm một business theo subdomain (không phân biệt hoa thường)
func (s *BusinessService) FindBySubdomain(ctx context.Context, subDomain string) (businessmodels.Business, error) {
	filter := bson.M{"subDomain": strings.ToLower(strings.TrimSpace(subDomain))}
	var business businessmodels.Business
	err := s.Collection().FindOne(ctx, filter).Decode(&business)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return business, common.ErrNotFound
		}
		return business, common.ConvertMongoError(err)
	}
	return business, nil
}

// FindByPhoneNumberID tìm business sở hữu phone-number ID.
// Trả về nil (không lỗi) khi không có business nào khớp - caller tự quyết định bỏ qua.
func (s *BusinessService) FindByPhoneNumberID(ctx context.Context, phoneNumberID string) (*businessmodels.Business, error) {
	if phoneNumberID == "" {
		return nil, nil
	}
	filter := bson.M{"phoneNumberIds": phoneNumberID, "isActive": true}
	var business businessmodels.Business
	err := s.Collection().FindOne(ctx, filter).Decode(&business)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, common.ConvertMongoError(err)
	}
	return &business, nil
}

// FindByWabaID tìm business theo WhatsApp Business Account ID.
// Trả về nil (không lỗi) khi không có business nào khớp.
func (s *BusinessService) FindByWabaID(ctx context.Context, wabaID string) (*businessmodels.Business, error) {
	if wabaID == "" {
		return nil, nil
	}
	filter := bson.M{"wabaId": wabaID, "isActive": true}
	var business businessmodels.Business
	err := s.Collection().FindOne(ctx, filter).Decode(&business)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, common.ConvertMongoError(err)
	}
	return &business, nil
}

// CreateBusiness tạo mới một tenant, chuẩn hóa subdomain về lowercase
func (s *BusinessService) CreateBusiness(ctx context.Context, input *businessdto.BusinessCreateInput) (businessmodels.Business, error) {
	var zero businessmodels.Business

	subDomain := strings.ToLower(strings.TrimSpace(input.SubDomain))

	// Subdomain là khóa tenant chính, không cho trùng
	exists, err := s.DocumentExists(ctx, bson.M{"subDomain": subDomain})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusiness,
			fmt.Sprintf("Subdomain '%s' đã được sử dụng", subDomain),
			common.StatusConflict,
			nil,
		)
	}

	locations := make([]businessmodels.BusinessLocation, 0, len(input.Locations))
	for _, loc := range input.Locations {
		locations = append(locations, businessmodels.BusinessLocation{
			LocalID:  loc.LocalID,
			Name:     loc.Name,
			Address:  loc.Address,
			Phone:    loc.Phone,
			IsActive: loc.IsActive,
		})
	}

	business := businessmodels.Business{
		Name:            input.Name,
		SubDomain:       subDomain,
		WabaID:          input.WabaID,
		PhoneNumberIDs:  input.PhoneNumberIDs,
		Locations:       locations,
		WhatsAppEnabled: input.WhatsAppEnabled,
		IsActive:        input.IsActive,
	}
	return s.InsertOne(ctx, business)
}

// SetAccessToken mã hóa và lưu access token cho tenant.
// Token chỉ tồn tại dạng plaintext trong bộ nhớ của request này.
func (s *BusinessService) SetAccessToken(ctx context.Context, input *businessdto.BusinessSetTokenInput) (businessmodels.Business, error) {
	var zero businessmodels.Business

	business, err := s.FindBySubdomain(ctx, input.SubDomain)
	if err != nil {
		return zero, err
	}

	encrypted, err := EncryptAccessToken(input.AccessToken)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeInternalServer,
			"Không thể mã hóa access token",
			common.StatusInternalServerError,
			err,
		)
	}

	expiresAt := input.TokenExpiresAt
	if expiresAt == 0 {
		// Meta long-lived token mặc định 60 ngày
		expiresAt = time.Now().Add(60 * 24 * time.Hour).UnixMilli()
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"encryptedAccessToken": encrypted,
			"tokenExpiresAt":       expiresAt,
		},
	}
	return s.UpdateById(ctx, business.ID, updateData)
}

// GetDecryptedAccessToken giải mã access token của tenant để gọi Meta Graph API.
// Trả về lỗi khi tenant chưa có token hoặc token đã hết hạn.
func (s *BusinessService) GetDecryptedAccessToken(ctx context.Context, business *businessmodels.Business) (string, error) {
	if business.EncryptedAccessToken == "" {
		return "", common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Tenant '%s' chưa cấu hình access token", business.SubDomain),
			common.StatusBadRequest,
			nil,
		)
	}
	if business.TokenExpiresAt > 0 && business.TokenExpiresAt < time.Now().UnixMilli() {
		return "", common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Access token của tenant '%s' đã hết hạn", business.SubDomain),
			common.StatusBadRequest,
			nil,
		)
	}
	token, err := DecryptAccessToken(business.EncryptedAccessToken)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			"Không thể giải mã access token",
			common.StatusInternalServerError,
			err,
		)
	}
	return token, nil
}
