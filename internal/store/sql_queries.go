package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-order-keeper/models"
)

const (
	usersTable    = "users"
	productsTable = "products"
	ordersTable   = "orders"
)

var (
	userColumns    = []string{"user_id", "username", "password_hash", "role", "created_at"}
	productColumns = []string{"id", "name", "description", "price", "image_url"}
	orderColumns   = []string{"id", "customer_name", "phone", "address", "total", "items", "status", "created_by", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildFindUserByUsernameQuery(sb sq.StatementBuilderType, username string) sq.SelectBuilder {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username})
}

func buildExistsByUsernameQuery(sb sq.StatementBuilderType, username string) sq.SelectBuilder {
	return sb.Select("COUNT(1)").
		From(usersTable).
		Where(sq.Eq{"username": username})
}

func buildCreateUserQuery(sb sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return sb.Insert(usersTable).
		Columns("username", "password_hash", "role", "created_at").
		Values(user.Username, user.PasswordHash, string(user.Role), user.CreatedAt).
		Suffix(returning(userColumns))
}

// ── products ──────────────────────────────────────────────────────────────────

func buildCreateProductQuery(sb sq.StatementBuilderType, p models.Product) sq.InsertBuilder {
	return sb.Insert(productsTable).
		Columns("name", "description", "price", "image_url").
		Values(p.Name, p.Description, p.Price, p.ImageURL).
		Suffix(returning(productColumns))
}

func buildGetProductQuery(sb sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return sb.Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": id})
}

// buildListProductsQuery applies a case-insensitive substring match on the
// name and an inclusive price range.
func buildListProductsQuery(sb sq.StatementBuilderType, filter models.ProductFilter) sq.SelectBuilder {
	q := sb.Select(productColumns...).
		From(productsTable).
		OrderBy("id")

	if name := strings.TrimSpace(filter.Name); name != "" {
		q = q.Where(sq.Like{"LOWER(name)": "%" + strings.ToLower(name) + "%"})
	}
	if filter.MinPrice != nil {
		q = q.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		q = q.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	return q
}

// buildUpdateProductQuery sets only the non-nil fields of update.
func buildUpdateProductQuery(sb sq.StatementBuilderType, id int64, update models.ProductUpdate) (sq.UpdateBuilder, error) {
	if update.Empty() {
		return sq.UpdateBuilder{}, ErrNothingToUpdate
	}

	q := sb.Update(productsTable)
	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.Description != nil {
		q = q.Set("description", *update.Description)
	}
	if update.Price != nil {
		q = q.Set("price", *update.Price)
	}
	if update.ImageURL != nil {
		q = q.Set("image_url", *update.ImageURL)
	}

	return q.Where(sq.Eq{"id": id}).Suffix(returning(productColumns)), nil
}

func buildDeleteProductQuery(sb sq.StatementBuilderType, id int64) sq.DeleteBuilder {
	return sb.Delete(productsTable).Where(sq.Eq{"id": id})
}

func buildCountProductsQuery(sb sq.StatementBuilderType) sq.SelectBuilder {
	return sb.Select("COUNT(1)").From(productsTable)
}

// ── orders ────────────────────────────────────────────────────────────────────

func buildCreateOrderQuery(sb sq.StatementBuilderType, o models.Order) sq.InsertBuilder {
	return sb.Insert(ordersTable).
		Columns("customer_name", "phone", "address", "total", "items", "status", "created_by", "created_at").
		Values(o.CustomerName, o.Phone, o.Address, o.Total, string(o.Items), string(o.Status), o.CreatedBy, o.CreatedAt).
		Suffix(returning(orderColumns))
}

func buildGetOrderQuery(sb sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return sb.Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": id})
}

func buildListOrdersQuery(sb sq.StatementBuilderType, filter models.OrderFilter) sq.SelectBuilder {
	q := sb.Select(orderColumns...).
		From(ordersTable).
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.CreatedBy != "" {
		q = q.Where(sq.Eq{"created_by": filter.CreatedBy})
	}

	return q
}

func buildUpdateOrderStatusQuery(sb sq.StatementBuilderType, id int64, status models.OrderStatus) sq.UpdateBuilder {
	return sb.Update(ordersTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		Suffix(returning(orderColumns))
}

func buildOrderStatsQuery(sb sq.StatementBuilderType) sq.SelectBuilder {
	return sb.Select("status", "COUNT(1)", "COALESCE(SUM(total), 0)").
		From(ordersTable).
		GroupBy("status")
}
