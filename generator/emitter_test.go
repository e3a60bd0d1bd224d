package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/entigen/naming"
	"github.com/ridoystarlord/entigen/schema"
)

const orderItemEntity = `package com.acme.order;

import lombok.*;
import javax.persistence.*;
import java.io.Serializable;

/** Order lines */
@IdClass(OrderItemPK.class)
@Entity
@Table(name = "order_item")
@Data
@NoArgsConstructor
@AllArgsConstructor
public class OrderItem {

    /** Order */
    @Id
    @Column(name = "order_id", nullable = false, columnDefinition = "bigint(20)")
    private Long orderId;

    /** int(11) */
    @Id
    @Column(name = "line_no", nullable = false, columnDefinition = "int(11)")
    private Integer lineNo;

    /** Unit price */
    @Column(name = "price", nullable = true, columnDefinition = "decimal(10,2) DEFAULT 0.00")
    private java.math.BigDecimal price;

    /** decimal(10,0) */
    @Column(name = "qty", nullable = true, columnDefinition = "decimal(10,0)")
    private java.math.BigDecimal qty;

}
`

const orderItemPK = `package com.acme.order;

import lombok.*;
import java.io.Serializable;
import javax.persistence.*;

@Data
@NoArgsConstructor
@AllArgsConstructor
public class OrderItemPK implements Serializable {

    private String orderId;
    private String lineNo;
}
`

const orderItemDTO = `package com.acme.order;

import lombok.Data;
import lombok.NoArgsConstructor;
import lombok.AllArgsConstructor;

/** Order lines */
@Data
@NoArgsConstructor
@AllArgsConstructor
public class OrderItem {

    /** Order */
    private Long orderId;

    /** int(11) */
    private Integer lineNo;

    /** Unit price */
    private java.math.BigDecimal price;

    /** decimal(10,0) */
    private Long qty;

}
`

const usersEntity = `package com.acme.users;

import lombok.*;
import javax.persistence.*;

@Entity
@Table(name = "users")
@Data
@NoArgsConstructor
@AllArgsConstructor
public class Users {

    /** bigint(20) unsigned */
    @Id
    @Column(name = "id", nullable = false, columnDefinition = "bigint(20) unsigned auto_increment")
    private Long id;

    /** Login name */
    @Column(name = "user_ID", nullable = false, columnDefinition = "varchar(64) DEFAULT 'guest'")
    private String userID;

}
`

func TestRenderCompositeEntity(t *testing.T) {
	table, cols := orderItemTable()
	c, err := Build(table, cols, naming.PrefixFixes(nil).Resolve(table.Name), ModeEntity)
	require.NoError(t, err)

	files, err := Render(c, "com.acme")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join("order", "OrderItem.java"), files[0].Path)
	assert.Equal(t, orderItemEntity, string(files[0].Content))
	assert.Equal(t, filepath.Join("order", "OrderItemPK.java"), files[1].Path)
	assert.Equal(t, orderItemPK, string(files[1].Content))
}

func TestRenderDTO(t *testing.T) {
	table, cols := orderItemTable()
	c, err := Build(table, cols, naming.PrefixFixes(nil).Resolve(table.Name), ModeDTO)
	require.NoError(t, err)

	files, err := Render(c, "com.acme")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, orderItemDTO, string(files[0].Content))
}

func TestRenderSingleKeyEntity(t *testing.T) {
	table := schema.Table{Name: "users"}
	cols := []schema.Column{
		{Name: "id", Type: "bigint(20) unsigned", Key: schema.KeyPrimary, Extra: "auto_increment", TableName: "users"},
		{Name: "user_ID", Type: "varchar(64)", Default: strPtr("'guest'"), Comment: "Login name", TableName: "users"},
	}
	c, err := Build(table, cols, naming.PrefixFixes(nil).Resolve(table.Name), ModeEntity)
	require.NoError(t, err)

	files, err := Render(c, "com.acme")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join("users", "Users.java"), files[0].Path)
	assert.Equal(t, usersEntity, string(files[0].Content))
}

func TestRenderNoColumns(t *testing.T) {
	c, err := Build(schema.Table{Name: "empty"}, nil, naming.PrefixFixes(nil).Resolve("empty"), ModeDTO)
	require.NoError(t, err)

	files, err := Render(c, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, string(files[0].Content), "package empty;\n")
	assert.Contains(t, string(files[0].Content), "public class Empty {\n\n}\n")
}

func TestRenderEmptyPackageSuffix(t *testing.T) {
	name := naming.PrefixFixes(nil).Resolve("_audit")
	require.Empty(t, name.PackageSuffix)

	cols := []schema.Column{{Name: "id", Type: "int(11)", Key: schema.KeyPrimary, TableName: "_audit"}}
	c, err := Build(schema.Table{Name: "_audit"}, cols, name, ModeEntity)
	require.NoError(t, err)

	files, err := Render(c, "com.acme")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Audit.java", files[0].Path)
	assert.Contains(t, string(files[0].Content), "package com.acme;\n")
	assert.NotContains(t, string(files[0].Content), "com.acme.;")
}

func TestJoinPackage(t *testing.T) {
	assert.Equal(t, "com.acme.order", joinPackage("com.acme", "order"))
	assert.Equal(t, "order", joinPackage("", "order"))
	assert.Equal(t, "com.acme", joinPackage("com.acme", ""))
}

func TestRenderDeterministic(t *testing.T) {
	table, cols := orderItemTable()
	c, err := Build(table, cols, naming.PrefixFixes(nil).Resolve(table.Name), ModeEntity)
	require.NoError(t, err)

	first, err := Render(c, "com.acme")
	require.NoError(t, err)
	second, err := Render(c, "com.acme")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFile(t *testing.T) {
	root := t.TempDir()
	f := File{Path: filepath.Join("order", "OrderItem.java"), Content: []byte("class")}

	path, err := WriteFile(root, f)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "order", "OrderItem.java"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class", string(data))

	// Folder already exists and the file is overwritten.
	f.Content = []byte("class v2")
	_, err = WriteFile(root, f)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class v2", string(data))
}

func TestWriteFileError(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "order")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	_, err := WriteFile(root, File{Path: filepath.Join("order", "OrderItem.java")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, blocker, we.Path)
	assert.NotNil(t, we.Unwrap())
}
