package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"budget/config"
	"budget/database"
	"budget/middleware"
	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// SessionResponse 会话响应
type SessionResponse struct {
	Token    string      `json:"token,omitempty"`
	UserInfo models.User `json:"user_info"`
}

// generateGuestUsername 生成匿名用户名
func generateGuestUsername() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "guest_" + hex.EncodeToString(bytes), nil
}

// SignInAnonymously 匿名登录
// @Summary 匿名登录
// @Description 无需任何凭据，创建匿名用户并签发 JWT。匿名账本数据在后续关联邮箱后全部保留。
// @Tags 认证
// @Accept json
// @Produce json
// @Success 200 {object} Response{data=SessionResponse} "登录成功"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/anonymous [post]
func (h *AuthHandler) SignInAnonymously(c *gin.Context) {
	username, err := generateGuestUsername()
	if err != nil {
		InternalError(c, "生成匿名账号失败")
		return
	}

	user := models.User{
		Username:    username,
		IsAnonymous: true,
		Status:      models.UserStatusActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建匿名账号失败"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, true, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, SessionResponse{Token: token, UserInfo: user})
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Username string `json:"username" binding:"omitempty,min=3,max=50" example:"testuser"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 使用邮箱和密码创建账号并直接签发 JWT。未填用户名时以邮箱作为用户名。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=SessionResponse} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if req.Username == "" {
		req.Username = req.Email
	}

	// 检查邮箱是否已被注册
	var existingUser models.User
	if err := database.DB.Where("email = ? AND is_anonymous = ?", req.Email, false).
		First(&existingUser).Error; err == nil {
		BadRequest(c, "该邮箱已被注册")
		return
	}

	// 检查用户名是否已存在
	if err := database.DB.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		BadRequest(c, "用户名已存在")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		Status:   models.UserStatusActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, false, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	SuccessWithMessage(c, "注册成功", SessionResponse{Token: token, UserInfo: user})
}

// LoginRequest 登录请求（支持用户名或邮箱）
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"test@example.com"` // 可为用户名或邮箱
	Password string `json:"password" binding:"required" example:"password123"`
}

// Login 用户登录
// @Summary 用户登录
// @Description 使用用户名或邮箱登录获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=SessionResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.
		Where("(username = ? OR email = ?) AND is_anonymous = ?", req.Username, req.Username, false).
		First(&user).Error; err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	if user.Status != models.UserStatusActive {
		Error(c, http.StatusForbidden, "账号已锁定，请联系管理员解锁")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, false, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, SessionResponse{Token: token, UserInfo: user})
}

// LinkAccountRequest 匿名账号关联邮箱请求
type LinkAccountRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
}

// LinkAccount 匿名账号关联邮箱
// @Summary 匿名账号关联邮箱
// @Description 为当前匿名账号绑定邮箱与密码，升级为正式账号。userID 不变，已记录的账本数据全部保留。
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LinkAccountRequest true "关联信息"
// @Success 200 {object} Response{data=SessionResponse} "关联成功"
// @Failure 400 {object} Response "请求参数错误或账号已是正式账号"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/link [post]
func (h *AuthHandler) LinkAccount(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req LinkAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}
	if !user.IsAnonymous {
		BadRequest(c, "当前账号已是正式账号")
		return
	}

	// 邮箱不能与已有正式账号冲突
	var existingUser models.User
	if err := database.DB.Where("email = ? AND is_anonymous = ?", req.Email, false).
		First(&existingUser).Error; err == nil {
		BadRequest(c, "该邮箱已被注册")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	updates := map[string]interface{}{
		"email":        req.Email,
		"password":     string(hashedPassword),
		"is_anonymous": false,
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "关联账号失败"))
		return
	}
	user.Email = req.Email
	user.IsAnonymous = false

	token, err := middleware.GenerateToken(user.ID, user.Username, false, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	SuccessWithMessage(c, "账号关联成功", SessionResponse{Token: token, UserInfo: user})
}

// GetSession 获取当前会话
// @Summary 获取当前会话
// @Description 返回当前 JWT 对应的用户信息与匿名标记
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	Success(c, user)
}

// SignOut 退出登录
// @Summary 退出登录
// @Description JWT 为无状态令牌，服务端直接返回成功，客户端丢弃本地 token 即可
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "退出成功"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	SuccessWithMessage(c, "已退出登录", nil)
}

// RequestPasswordResetRequest 请求密码重置
type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// RequestPasswordReset 请求密码重置（发送重置链接邮件）
// @Summary 请求密码重置
// @Description 为指定邮箱生成重置令牌并发送包含重置链接的邮件。为了安全，无论邮箱是否注册都返回成功。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RequestPasswordResetRequest true "密码重置请求"
// @Success 200 {object} Response "重置邮件已发送"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/v1/auth/password/request-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请输入有效的邮箱地址")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ? AND is_anonymous = ?", req.Email, false).
		First(&user).Error; err != nil {
		// 为了安全，即使用户不存在也返回成功
		SuccessWithMessage(c, "如果该邮箱已注册，您将收到密码重置邮件", nil)
		return
	}

	// 检查是否有未使用的有效令牌（防止频繁发送）
	var existingReset models.PasswordReset
	if err := database.DB.Where("user_id = ? AND used = ? AND expires_at > ?",
		user.ID, false, time.Now()).First(&existingReset).Error; err == nil {
		if time.Since(existingReset.CreatedAt) < time.Minute {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": "请求过于频繁，请稍后再试",
			})
			return
		}
		database.DB.Model(&existingReset).Update("used", true)
	}

	token, err := models.GenerateToken()
	if err != nil {
		InternalError(c, "生成重置令牌失败")
		return
	}

	passwordReset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		Email:     req.Email,
		ExpiresAt: time.Now().Add(time.Hour), // 1小时有效期
	}
	if err := database.DB.Create(&passwordReset).Error; err != nil {
		InternalError(c, "创建重置令牌失败")
		return
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", h.cfg.Server.BaseURL, token)
	if err := h.emailService.SendPasswordResetEmail(req.Email, user.Username, resetLink); err != nil {
		database.DB.Delete(&passwordReset)
		InternalError(c, SafeErrorMessage(err, "邮件发送失败"))
		return
	}

	SuccessWithMessage(c, "密码重置邮件已发送，请查收", nil)
}

// VerifyResetToken 校验重置令牌
// @Summary 校验重置令牌
// @Description 校验密码重置令牌是否有效（未使用且未过期）
// @Tags 认证
// @Produce json
// @Param token query string true "重置令牌"
// @Success 200 {object} Response "令牌有效"
// @Failure 400 {object} Response "令牌无效或已过期"
// @Router /api/v1/auth/password/verify-token [get]
func (h *AuthHandler) VerifyResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		BadRequest(c, "缺少 token 参数")
		return
	}

	var passwordReset models.PasswordReset
	if err := database.DB.Where("token = ?", token).First(&passwordReset).Error; err != nil {
		BadRequest(c, "令牌无效")
		return
	}

	if !passwordReset.IsValid() {
		if passwordReset.Used {
			BadRequest(c, "令牌已被使用")
		} else {
			BadRequest(c, "令牌已过期，请重新申请")
		}
		return
	}

	SuccessWithMessage(c, "令牌有效", gin.H{"email": passwordReset.Email})
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50" example:"newpassword123"`
}

// ResetPassword 重置密码
// @Summary 重置密码
// @Description 使用重置令牌设置新密码，并作废该用户全部未使用的令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "重置密码请求"
// @Success 200 {object} Response "密码重置成功"
// @Failure 400 {object} Response "令牌无效或已过期"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/password/reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var passwordReset models.PasswordReset
	if err := database.DB.Where("token = ?", req.Token).First(&passwordReset).Error; err != nil {
		BadRequest(c, "令牌无效")
		return
	}

	if !passwordReset.IsValid() {
		if passwordReset.Used {
			BadRequest(c, "令牌已被使用")
		} else {
			BadRequest(c, "令牌已过期，请重新申请")
		}
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", passwordReset.UserID).
		Update("password", string(hashedPassword)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新密码失败"))
		return
	}

	// 作废该用户全部未使用的令牌
	database.DB.Model(&models.PasswordReset{}).
		Where("user_id = ? AND used = ?", passwordReset.UserID, false).
		Update("used", true)

	SuccessWithMessage(c, "密码重置成功，请使用新密码登录", nil)
}
