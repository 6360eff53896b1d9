package ateliersvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"atelier_commerce/internal/api/atelier/dto"
	"atelier_commerce/internal/api/atelier/models"
	basesvc "atelier_commerce/internal/api/base/service"
	"atelier_commerce/internal/common"
	"atelier_commerce/internal/global"
	"atelier_commerce/internal/logger"
	"atelier_commerce/internal/utility"
)

// Thời hạn của link đặt lại mật khẩu
const resetTokenTTL = time.Hour

// TricoteuseService xử lý collection tricoteuses: hồ sơ thợ, đăng nhập
// và đặt lại mật khẩu
type TricoteuseService struct {
	*basesvc.BaseServiceMongoImpl[models.Tricoteuse]
}

// NewTricoteuseService tạo TricoteuseService mới
func NewTricoteuseService() (*TricoteuseService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tricoteuses)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tricoteuses, common.ErrNotFound)
	}
	return &TricoteuseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tricoteuse](coll),
	}, nil
}

// CreateTricoteuse tạo hồ sơ tricoteuse mới; mật khẩu (nếu có) được băm
// bcrypt trước khi lưu. Email trùng trả về lỗi duplicate.
func (s *TricoteuseService) CreateTricoteuse(ctx context.Context, input *dto.TricoteuseCreateInput) (models.Tricoteuse, error) {
	var zero models.Tricoteuse

	tricoteuse := models.Tricoteuse{
		FirstName: input.FirstName,
		Email:     input.Email,
		Color:     input.Color,
		PhotoUrl:  input.PhotoUrl,
		Gender:    input.Gender,
	}

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return zero, common.NewError(common.ErrCodeInternalServer, "Không băm được mật khẩu", common.StatusInternalServerError, err)
		}
		tricoteuse.Password = string(hashed)
	}

	return s.InsertOne(ctx, tricoteuse)
}

// UpdateTricoteuse cập nhật hồ sơ; mật khẩu mới (nếu có) được băm lại
func (s *TricoteuseService) UpdateTricoteuse(ctx context.Context, id primitive.ObjectID, input *dto.TricoteuseUpdateInput) (models.Tricoteuse, error) {
	var zero models.Tricoteuse

	set := bson.M{}
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Color != "" {
		set["color"] = input.Color
	}
	if input.PhotoUrl != "" {
		set["photoUrl"] = input.PhotoUrl
	}
	if input.Gender != "" {
		set["gender"] = input.Gender
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return zero, common.NewError(common.ErrCodeInternalServer, "Không băm được mật khẩu", common.StatusInternalServerError, err)
		}
		set["password"] = string(hashed)
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// Login xác thực email + mật khẩu và trả về JWT token.
// Mọi trường hợp thất bại (không có user, chưa đặt mật khẩu, sai mật khẩu)
// đều trả về cùng một lỗi để không lộ thông tin tài khoản.
func (s *TricoteuseService) Login(ctx context.Context, input *dto.TricoteuseLoginInput) (*models.Tricoteuse, string, error) {
	tricoteuse, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if tricoteuse.Password == "" {
		return nil, "", common.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tricoteuse.Password), []byte(input.Password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		tricoteuse.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return nil, "", err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"tricoteuseId": tricoteuse.ID.Hex(),
		"email":        tricoteuse.Email,
	}).Info("Tricoteuse đăng nhập thành công")

	return &tricoteuse, tokenMap["token"], nil
}

// ForgotPassword gửi email chứa link đặt lại mật khẩu.
// Email không tồn tại không phải là lỗi đối với caller (chống dò tài khoản);
// chi tiết chỉ ghi log.
func (s *TricoteuseService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.GetAppLogger()

	tricoteuse, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.WithField("email", email).Warn("Yêu cầu đặt lại mật khẩu cho email không tồn tại")
			return nil
		}
		return err
	}

	token, err := utility.CreateExpiringToken(global.MongoDB_ServerConfig.JwtSecret, tricoteuse.ID.Hex(), resetTokenTTL)
	if err != nil {
		return err
	}

	mailer, err := utility.NewMailer(global.MongoDB_ServerConfig)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "SMTP chưa được cấu hình", common.StatusInternalServerError, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", global.MongoDB_ServerConfig.FrontendURL, token)
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p><p>Cliquez sur le lien pour réinitialiser votre mot de passe :</p><p><a href=\"%s\">Réinitialiser le mot de passe</a></p><p>Ce lien expire dans une heure.</p>",
		tricoteuse.FirstName, resetLink,
	)

	if err := mailer.SendHTML(tricoteuse.Email, "Réinitialisation de votre mot de passe", body); err != nil {
		log.WithField("email", email).WithError(err).Error("Không gửi được email đặt lại mật khẩu")
		return common.NewError(common.ErrCodeInternalServer, "Không gửi được email", common.StatusInternalServerError, err)
	}

	return nil
}

// ResetPassword xác thực token đặt lại và ghi mật khẩu mới (băm bcrypt)
func (s *TricoteuseService) ResetPassword(ctx context.Context, input *dto.ResetPasswordInput) error {
	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, input.Token)
	if err != nil {
		return err
	}

	id := utility.String2ObjectID(claims.UserID)
	if id.IsZero() {
		return common.ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không băm được mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: bson.M{"password": string(hashed)},
	})
	return err
}
