package hostfs_test

import (
	"context"
	"fmt"
	"log"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/osfs"
)

func ExampleStatus() {
	fsys, ctx := osfs.TempFS(context.Background())
	defer fsys.Close()

	file := hostfs.Path(fsys, "file.txt")
	err := hostfs.WriteFile(ctx, fsys, file, []byte("data"))
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range []string{"file.txt", "missing.txt"} {
		st, serr := hostfs.Status(ctx, fsys, hostfs.Path(fsys, name))
		if serr != nil {
			log.Fatal(serr)
		}
		fmt.Println(name, st.Type)
	}
	// Output:
	// file.txt regular
	// missing.txt not found
}

func ExampleMkdirs() {
	fsys, ctx := osfs.TempFS(context.Background())
	defer fsys.Close()

	dir := hostfs.Path(fsys, "a").Join("b", "c")
	created, err := hostfs.Mkdirs(ctx, fsys, dir)
	if err != nil {
		log.Fatal(err)
	}
	ok, err := hostfs.Exists(ctx, fsys, dir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(created, ok)
	// Output:
	// true true
}

func ExampleRemoveAll() {
	fsys, ctx := osfs.TempFS(context.Background())
	defer fsys.Close()

	tree := hostfs.Path(fsys, "tree")
	if _, err := hostfs.Mkdirs(ctx, fsys, tree.Join("a", "b")); err != nil {
		log.Fatal(err)
	}
	err := hostfs.WriteFile(ctx, fsys, tree.Join("f.txt"), []byte("data"))
	if err != nil {
		log.Fatal(err)
	}
	n, err := hostfs.RemoveAll(ctx, fsys, tree)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("removed", n)
	// Output:
	// removed 4
}

func ExampleWalk() {
	fsys, ctx := osfs.TempFS(context.Background())
	defer fsys.Close()

	root := hostfs.Path(fsys, "root")
	for _, p := range []string{"b", "a"} {
		if _, err := hostfs.Mkdirs(ctx, fsys, root.Join(p, "sub")); err != nil {
			log.Fatal(err)
		}
	}
	for entry, err := range hostfs.Walk(ctx, fsys, root, 0) {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(entry.Path().GenericString())
	}
	// Output:
	// root/a
	// root/b
	// root/a/sub
	// root/b/sub
}

func ExampleGlob() {
	fsys, ctx := osfs.TempFS(context.Background())
	defer fsys.Close()

	src := hostfs.Path(fsys, "src")
	for _, name := range []string{"main.go", "util.go", "README.md"} {
		p := src.Join("pkg", name)
		if _, err := hostfs.Mkdirs(ctx, fsys, p.Parent()); err != nil {
			log.Fatal(err)
		}
		if err := hostfs.WriteFile(ctx, fsys, p, nil); err != nil {
			log.Fatal(err)
		}
	}
	matches, err := hostfs.Glob(ctx, fsys, src, "**/*.go")
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range matches {
		fmt.Println(m.Filename())
	}
	// Output:
	// main.go
	// util.go
}

func ExampleWithDirMode() {
	fsys, ctx := osfs.TempFS(context.Background())
	defer fsys.Close()

	ctx = hostfs.WithDirMode(ctx, 0700)
	dir := hostfs.Path(fsys, "private")
	if _, err := hostfs.Mkdir(ctx, fsys, dir); err != nil {
		log.Fatal(err)
	}
	st, err := hostfs.Status(ctx, fsys, dir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%04o\n", st.Perms)
	// Output:
	// 0700
}
