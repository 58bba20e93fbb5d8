package i18n

import (
	"fmt"
	"strings"

	"github.com/finotty/duqueLoja/internal/constants"

	"github.com/gin-gonic/gin"
)

// messages per locale, keyed by message key
var messages = map[string]map[string]string{
	constants.LocalePtBR: {
		"error.bad_request":            "Requisição inválida",
		"error.unauthorized":           "Não autorizado",
		"error.forbidden":              "Acesso negado",
		"error.not_found":              "Recurso não encontrado",
		"error.internal":               "Erro interno do servidor",
		"error.catalog_unavailable":    "Catálogo indisponível, tente novamente",
		"error.product_name_taken":     "Já existe um produto com este nome",
		"error.product_price_invalid":  "Preço do produto inválido",
		"error.template_not_found":     "Modelo de produto não encontrado",
		"error.category_invalid":       "Categoria inválida",
		"error.placement_invalid":      "Local de exibição inválido",
		"error.cart_index_invalid":     "Item do carrinho inválido",
		"error.cart_empty":             "Carrinho vazio",
		"error.order_not_found":        "Pedido não encontrado",
		"error.order_status_invalid":   "Status do pedido não permite esta ação",
		"error.invalid_credentials":    "E-mail ou senha inválidos",
		"error.email_taken":            "E-mail já cadastrado",
		"error.password_policy":        "A senha não atende à política de segurança",
		"error.user_disabled":          "Conta desativada",
		"error.device_required":        "Identificação do dispositivo ausente",
		"error.jwt_secret_missing":     "Autenticação indisponível",
		"error.auth_header_missing":    "Cabeçalho de autorização ausente",
		"error.auth_header_invalid":    "Cabeçalho de autorização inválido",
		"error.token_invalid":          "Token inválido",
		"error.token_revoked":          "Sessão expirada, entre novamente",
		"error.login_too_many":         "Muitas tentativas de login, aguarde %d segundos",
		"error.captcha_required":       "Código de verificação obrigatório",
		"error.captcha_invalid":        "Código de verificação inválido",
		"error.rate_limited":           "Muitas tentativas, aguarde %d segundos",
		"error.rate_limit_unavailable": "Limite de requisições indisponível",

		"error.user_id_invalid":       "Identificador de usuário inválido",
		"error.user_id_type_invalid":  "Identificador de usuário corrompido",
		"error.admin_id_invalid":      "Identificador de operador inválido",
		"error.admin_id_type_invalid": "Identificador de operador corrompido",
		"error.user_not_found":        "Usuário não encontrado",
		"error.email_invalid":         "E-mail inválido",
		"error.admin_login_invalid":   "Usuário ou senha inválidos",
		"error.login_failed":          "Falha no login",
		"error.register_failed":       "Falha no cadastro",
		"error.profile_fetch_failed":  "Falha ao carregar o perfil",
		"error.password_weak":         "Senha fraca",
		"error.password_old_invalid":  "Senha atual incorreta",
		"error.save_failed":           "Falha ao salvar",

		"error.password_min_length":      "A senha deve ter pelo menos %d caracteres",
		"error.password_require_upper":   "A senha deve conter letra maiúscula",
		"error.password_require_lower":   "A senha deve conter letra minúscula",
		"error.password_require_number":  "A senha deve conter número",
		"error.password_require_special": "A senha deve conter caractere especial",

		"error.captcha_unavailable":     "Verificação indisponível",
		"error.captcha_generate_failed": "Falha ao gerar o código de verificação",
		"error.captcha_config_invalid":  "Configuração de verificação inválida",
		"error.captcha_verify_failed":   "Falha ao validar o código de verificação",

		"error.catalog_fetch_failed":     "Falha ao carregar o catálogo",
		"error.template_fetch_failed":    "Falha ao carregar os modelos",
		"error.product_register_failed":  "Falha ao registrar o produto",
		"error.cart_item_invalid":        "Item inválido",
		"error.cart_fetch_failed":        "Falha ao carregar o carrinho",
		"error.cart_update_failed":       "Falha ao atualizar o carrinho",
		"error.favorite_invalid":         "Favorito inválido",
		"error.favorites_fetch_failed":   "Falha ao carregar os favoritos",
		"error.favorites_update_failed":  "Falha ao atualizar os favoritos",
		"error.checkout_failed":          "Falha ao concluir a compra",
		"error.order_fetch_failed":       "Falha ao carregar os pedidos",
		"error.order_complete_failed":    "Falha ao concluir o pedido",
		"error.user_fetch_failed":        "Falha ao carregar os usuários",
		"error.user_update_failed":       "Falha ao atualizar os usuários",
		"error.authz_failed":             "Falha na gestão de permissões",
		"error.authz_role_invalid":       "Papel inválido",
	},
	constants.LocaleEnUS: {
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Unauthorized",
		"error.forbidden":              "Forbidden",
		"error.not_found":              "Resource not found",
		"error.internal":               "Internal server error",
		"error.catalog_unavailable":    "Catalog unavailable, please retry",
		"error.product_name_taken":     "A product with this name already exists",
		"error.product_price_invalid":  "Invalid product price",
		"error.template_not_found":     "Product template not found",
		"error.category_invalid":       "Invalid category",
		"error.placement_invalid":      "Invalid display placement",
		"error.cart_index_invalid":     "Invalid cart item",
		"error.cart_empty":             "Cart is empty",
		"error.order_not_found":        "Order not found",
		"error.order_status_invalid":   "Order status does not allow this action",
		"error.invalid_credentials":    "Invalid email or password",
		"error.email_taken":            "Email already registered",
		"error.password_policy":        "Password does not meet the security policy",
		"error.user_disabled":          "Account disabled",
		"error.device_required":        "Missing device identification",
		"error.jwt_secret_missing":     "Authentication unavailable",
		"error.auth_header_missing":    "Missing authorization header",
		"error.auth_header_invalid":    "Invalid authorization header",
		"error.token_invalid":          "Invalid token",
		"error.token_revoked":          "Session expired, sign in again",
		"error.login_too_many":         "Too many login attempts, wait %d seconds",
		"error.captcha_required":       "Captcha required",
		"error.captcha_invalid":        "Invalid captcha",
		"error.rate_limited":           "Too many attempts, wait %d seconds",
		"error.rate_limit_unavailable": "Rate limiter unavailable",

		"error.user_id_invalid":       "Invalid user identifier",
		"error.user_id_type_invalid":  "Corrupt user identifier",
		"error.admin_id_invalid":      "Invalid operator identifier",
		"error.admin_id_type_invalid": "Corrupt operator identifier",
		"error.user_not_found":        "User not found",
		"error.email_invalid":         "Invalid email",
		"error.admin_login_invalid":   "Invalid username or password",
		"error.login_failed":          "Login failed",
		"error.register_failed":       "Registration failed",
		"error.profile_fetch_failed":  "Failed to load profile",
		"error.password_weak":         "Weak password",
		"error.password_old_invalid":  "Current password is incorrect",
		"error.save_failed":           "Save failed",

		"error.password_min_length":      "Password must have at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a number",
		"error.password_require_special": "Password must contain a special character",

		"error.captcha_unavailable":     "Captcha unavailable",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.captcha_config_invalid":  "Invalid captcha configuration",
		"error.captcha_verify_failed":   "Failed to verify captcha",

		"error.catalog_fetch_failed":     "Failed to load catalog",
		"error.template_fetch_failed":    "Failed to load templates",
		"error.product_register_failed":  "Failed to register product",
		"error.cart_item_invalid":        "Invalid item",
		"error.cart_fetch_failed":        "Failed to load cart",
		"error.cart_update_failed":       "Failed to update cart",
		"error.favorite_invalid":         "Invalid favorite",
		"error.favorites_fetch_failed":   "Failed to load favorites",
		"error.favorites_update_failed":  "Failed to update favorites",
		"error.checkout_failed":          "Checkout failed",
		"error.order_fetch_failed":       "Failed to load orders",
		"error.order_complete_failed":    "Failed to complete order",
		"error.user_fetch_failed":        "Failed to load users",
		"error.user_update_failed":       "Failed to update users",
		"error.authz_failed":             "Permission management failed",
		"error.authz_role_invalid":       "Invalid role",
	},
}

// ResolveLocale picks the response locale from the query string or the
// Accept-Language header, falling back to pt-BR.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocalePtBR
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		if normalized := normalizeLocale(lang); normalized != "" {
			return normalized
		}
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if normalized := normalizeLocale(tag); normalized != "" {
			return normalized
		}
	}
	return constants.LocalePtBR
}

// T returns the message for key in the given locale
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.LocalePtBR][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats a parameterized message for key in the given locale
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(tag string) string {
	lowered := strings.ToLower(strings.TrimSpace(tag))
	switch {
	case lowered == "":
		return ""
	case strings.HasPrefix(lowered, "pt"):
		return constants.LocalePtBR
	case strings.HasPrefix(lowered, "en"):
		return constants.LocaleEnUS
	default:
		return ""
	}
}
