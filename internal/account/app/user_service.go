package app

import (
	"GameAdmin/internal/account/app/model"
	"GameAdmin/internal/account/domain"
	"context"
	"errors"
	"strings"
	"time"
)

type UserService struct {
	userRepo UserRepo
	lhRepo   LoginHistoryRepo
	llRepo   LoginLastRepo
	issuer   TokenIssuer
	hash     PwdHasher
	check    PwdChecker
	now      func() time.Time
}

func NewUserService(userRepo UserRepo, lhRepo LoginHistoryRepo, llRepo LoginLastRepo,
	issuer TokenIssuer, hash PwdHasher, check PwdChecker) *UserService {
	return &UserService{
		userRepo: userRepo,
		lhRepo:   lhRepo,
		llRepo:   llRepo,
		issuer:   issuer,
		hash:     hash,
		check:    check,
		now:      time.Now,
	}
}

// Register 创建账号，用户名与邮箱都必须未被占用。
func (s *UserService) Register(ctx context.Context, req model.RegisterReq) (*model.RegisterResp, error) {
	if fields := validateRegister(req); fields != nil {
		return nil, ErrInvalidParam.WithMsg(firstMessage(fields)).
			WithData(dataKeyFields, fields).
			WithReason(ReasonRegisterInvalid)
	}
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.ensureFree(ctx, username, email); err != nil {
		return nil, err
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, ErrInternalServer.WithReason(ReasonPasswordHash).WithCause(err)
	}

	now := s.now()
	u := &domain.User{
		Username: username,
		Email:    email,
		Passwd:   hashed,
		Status:   domain.UserNormal,
		Ctime:    now,
		Mtime:    now,
	}
	if err = s.userRepo.Create(ctx, u); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, domain.ErrUserExist) {
			return nil, ErrUserExist.WithReason(ReasonRegisterUserExist).WithData("username", username)
		}
		return nil, ErrUnavailable.WithReason(ReasonUserCreateFail).WithCause(err)
	}
	return &model.RegisterResp{UId: u.UId, Username: u.Username}, nil
}

func (s *UserService) ensureFree(ctx context.Context, username, email string) error {
	_, err := s.userRepo.GetUserByUserName(ctx, username)
	switch {
	case err == nil:
		return ErrUserExist.WithReason(ReasonRegisterUserExist).WithData("username", username)
	case !errors.Is(err, domain.ErrUserNotFound):
		return ErrUnavailable.WithReason(ReasonUserRepoUnavailable).WithCause(err)
	}

	_, err = s.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrUserExist.WithReason(ReasonRegisterEmailExist).WithData("email", email)
	case !errors.Is(err, domain.ErrUserNotFound):
		return ErrUnavailable.WithReason(ReasonUserRepoUnavailable).WithCause(err)
	}
	return nil
}

// Login 校验密码、签发 token，并刷新 login_last；对已存在用户的每次尝试都写 login_history。
func (s *UserService) Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidParam.WithMsg("Username and password are required").WithReason(ReasonLoginMissingField)
	}

	user, err := s.userRepo.GetUserByUserName(ctx, username)
	if err != nil {
		// 区分"用户不存在"（业务错误）和"数据库挂了"（技术错误）
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials.WithReason(ReasonLoginUserNotFound).WithData("username", username)
		}
		return nil, ErrUnavailable.WithReason(ReasonUserRepoUnavailable).WithCause(err)
	}

	now := s.now()
	var reject Reason
	switch {
	case !user.Enabled():
		reject = ReasonLoginUserDisabled
	case !user.CheckPassword(req.Password, s.check):
		reject = ReasonLoginPwdMismatch
	}
	if reject.Code != "" {
		if err = s.saveHistory(ctx, user.UId, now, req, false); err != nil {
			return nil, err
		}
		return nil, ErrInvalidCredentials.WithReason(reject).WithData("uid", user.UId)
	}

	token, err := s.issuer.Award(user.UId)
	if err != nil {
		return nil, ErrInternalServer.WithReason(ReasonTokenIssue).WithData("uid", user.UId).WithCause(err)
	}

	if err = s.saveHistory(ctx, user.UId, now, req, true); err != nil {
		return nil, err
	}

	// 保存最后一次登录的状态，新 token 取代旧 token
	ll, err := s.llRepo.GetLoginLast(ctx, user.UId)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrLastLoginNotFound):
		ll = domain.LoginLast{UId: user.UId}
	default:
		return nil, ErrUnavailable.WithReason(ReasonLoginLastReadFail).WithCause(err)
	}
	ll.LoginTime = now
	ll.LogoutTime = nil
	ll.Ip = req.Ip
	ll.Session = token
	ll.Hardware = req.Hardware
	ll.IsLogout = domain.LoggedIn
	if err = s.llRepo.Save(ctx, ll); err != nil {
		return nil, ErrUnavailable.WithReason(ReasonLoginLastWriteFail).WithCause(err)
	}

	return &model.LoginResp{
		UId:      user.UId,
		Username: user.Username,
		Token:    token,
	}, nil
}

func (s *UserService) saveHistory(ctx context.Context, uid int, at time.Time, req model.LoginReq, success bool) error {
	lh := domain.NewLoginHistory(uid, at, req.Ip, req.Hardware, success)
	if err := s.lhRepo.Save(ctx, lh); err != nil {
		return ErrUnavailable.WithReason(ReasonLoginHistoryWriteFail).WithCause(err)
	}
	return nil
}

// Logout 仅当 token 是当前会话时标记登出；重复调用不报错。
func (s *UserService) Logout(ctx context.Context, uid int, token string) error {
	ll, err := s.llRepo.GetLoginLast(ctx, uid)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrLastLoginNotFound):
		return nil
	default:
		return ErrUnavailable.WithReason(ReasonLoginLastReadFail).WithCause(err)
	}
	if !ll.Active(token) {
		return nil
	}
	ll.Logout(s.now())
	if err = s.llRepo.Save(ctx, ll); err != nil {
		return ErrUnavailable.WithReason(ReasonLoginLastWriteFail).WithCause(err)
	}
	return nil
}

// Authenticate 校验签名后再确认 token 仍是该用户的当前会话。
func (s *UserService) Authenticate(ctx context.Context, token string) (*model.Principal, error) {
	if token == "" {
		return nil, ErrTokenInvalid.WithReason(ReasonTokenUnverifiable)
	}
	uid, err := s.issuer.Verify(token)
	if err != nil {
		return nil, ErrTokenInvalid.WithReason(ReasonTokenUnverifiable).WithCause(err)
	}

	ll, err := s.llRepo.GetLoginLast(ctx, uid)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrLastLoginNotFound):
		return nil, ErrTokenInvalid.WithReason(ReasonTokenSuperseded).WithData("uid", uid)
	default:
		return nil, ErrUnavailable.WithReason(ReasonLoginLastReadFail).WithCause(err)
	}
	if ll.IsLogout == domain.LoggedOut && ll.Session == token {
		return nil, ErrTokenInvalid.WithReason(ReasonTokenLoggedOut).WithData("uid", uid)
	}
	if !ll.Active(token) {
		return nil, ErrTokenInvalid.WithReason(ReasonTokenSuperseded).WithData("uid", uid)
	}

	user, err := s.userRepo.GetUserByUId(ctx, uid)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		return nil, ErrTokenInvalid.WithReason(ReasonTokenUserNotAllowed).WithData("uid", uid)
	default:
		return nil, ErrUnavailable.WithReason(ReasonUserRepoUnavailable).WithCause(err)
	}
	if !user.Enabled() {
		return nil, ErrTokenInvalid.WithReason(ReasonTokenUserNotAllowed).WithData("uid", uid)
	}
	return &model.Principal{UId: uid, Username: user.Username, Token: token}, nil
}

// firstMessage 按 username/email/password 的顺序取第一条提示。
func firstMessage(fields map[string]string) string {
	for _, k := range []string{"username", "email", "password"} {
		if m, ok := fields[k]; ok {
			return m
		}
	}
	for _, m := range fields {
		return m
	}
	return ""
}
