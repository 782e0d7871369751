package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/goop-edu/goop-api/internal/domain"
)

// seed populates the demo dataset: students sandy/budi/ani (ids 1-3), the
// teacher bambang (id 4), three projects, one active ten-question OOP test,
// and six materials. The ids and counts are load-bearing for fixture-based
// tests, so the routine is deterministic apart from the deadline dates,
// which are relative to today.
//
// A seed failure is a programmer error, not a runtime condition, hence the
// panics.
func (s *Store) seed() {
	ctx := context.Background()

	mustCreateStudent := func(username, password, email, fullName, nim, className string) *domain.Student {
		st, err := domain.NewStudent(username, password, email, fullName, nim, className)
		if err == nil {
			err = s.CreateStudent(ctx, st)
		}
		if err != nil {
			panic(fmt.Sprintf("seed: student %s: %v", username, err))
		}
		return st
	}

	sandy := mustCreateStudent("sandy", "123", "sandy@email.com", "Sandy Putra Pratama", "12345", "XII RPL")
	budi := mustCreateStudent("budi", "123", "budi@email.com", "Budi Santoso", "12346", "XII RPL")
	mustCreateStudent("ani", "123", "ani@email.com", "Ani Wijaya", "12347", "XII RPL")

	bambang, err := domain.NewTeacher("bambang", "123", "bambang@email.com", "Bambang Sujatmiko", "98765")
	if err == nil {
		err = s.CreateTeacher(ctx, bambang)
	}
	if err != nil {
		panic(fmt.Sprintf("seed: teacher bambang: %v", err))
	}

	mustCreateProject := func(title, description string, deadlineDays, studentID int) {
		p, err := domain.NewProject(title, description,
			time.Now().AddDate(0, 0, deadlineDays), studentID, bambang.ID)
		if err == nil {
			err = s.CreateProject(ctx, p)
		}
		if err != nil {
			panic(fmt.Sprintf("seed: project %q: %v", title, err))
		}
	}

	mustCreateProject("Hello World - Program Pertama",
		"Buat program Java sederhana yang menampilkan teks 'Hello, World!' ke console.\n\n"+
			"Instruksi:\n"+
			"1. Buat class bernama HelloWorld\n"+
			"2. Tambahkan method main\n"+
			"3. Gunakan System.out.println() untuk print 'Hello, World!'\n\n"+
			"Contoh output:\nHello, World!",
		7, sandy.ID)

	mustCreateProject("Kalkulator Sederhana",
		"Buat program kalkulator yang bisa menjumlahkan dua angka.\n\n"+
			"Instruksi:\n"+
			"1. Buat class Calculator\n"+
			"2. Buat method tambah(int a, int b) yang return hasil penjumlahan\n"+
			"3. Test di method main dengan beberapa angka\n\n"+
			"Contoh output:\n5 + 3 = 8",
		14, sandy.ID)

	mustCreateProject("Program Sapa Nama",
		"Buat program yang menyapa pengguna dengan nama mereka.\n\n"+
			"Instruksi:\n"+
			"1. Buat class Sapa\n"+
			"2. Buat method sapaNama(String nama)\n"+
			"3. Method harus print 'Halo, [nama]! Selamat datang!'\n\n"+
			"Contoh output:\nHalo, Budi! Selamat datang!",
		10, budi.ID)

	s.seedTest(ctx)
	s.seedMaterials(ctx, bambang.ID)

	s.logger.Info("demo dataset seeded",
		"students", len(s.students),
		"teachers", len(s.teachers),
		"projects", len(s.projects),
		"tests", len(s.tests),
		"materials", len(s.materials))
}

// seedTest builds the ten-question OOP comprehension test.
// Answer key: A B C C B A C B C B.
func (s *Store) seedTest(ctx context.Context) {
	test, err := domain.NewCognitiveTest("Tes Pemahaman OOP Dasar", 30)
	if err != nil {
		panic(fmt.Sprintf("seed: test: %v", err))
	}

	questions := []struct {
		prompt  string
		a, b    string
		c, d    string
		correct string
	}{
		{
			"Apa yang dimaksud dengan Class dalam OOP?",
			"Template atau blueprint untuk membuat object",
			"Variable untuk menyimpan data",
			"Function untuk menjalankan program",
			"Looping untuk mengulang proses",
			"A",
		},
		{
			"Apa yang dimaksud dengan Object?",
			"Looping statement",
			"Instance atau realisasi dari sebuah class",
			"Method dalam class",
			"Variable global",
			"B",
		},
		{
			"Apa itu Encapsulation?",
			"Pewarisan properties dari parent class",
			"Polymorphisme dalam OOP",
			"Pembungkusan data dan method dalam satu unit (class)",
			"Abstraksi dari object",
			"C",
		},
		{
			"Keyword untuk inheritance di Java adalah?",
			"implements",
			"inherits",
			"extends",
			"inherit",
			"C",
		},
		{
			"Apa keuntungan menggunakan Inheritance?",
			"Code lebih lambat",
			"Code reusability dan hierarki class",
			"Memerlukan lebih banyak memory",
			"Susah di-maintain",
			"B",
		},
		{
			"Apa itu Polymorphism?",
			"Kemampuan object untuk mengambil banyak bentuk",
			"Membuat banyak class",
			"Menggunakan banyak variable",
			"Inheritance dari multiple class",
			"A",
		},
		{
			"Manakah yang bukan pilar OOP?",
			"Encapsulation",
			"Inheritance",
			"Compilation",
			"Polymorphism",
			"C",
		},
		{
			"Access modifier 'private' artinya?",
			"Bisa diakses dari mana saja",
			"Hanya bisa diakses dalam class yang sama",
			"Bisa diakses dari package yang sama",
			"Bisa diakses dari subclass",
			"B",
		},
		{
			"Method yang memiliki nama sama dengan class disebut?",
			"Destructor",
			"Getter",
			"Constructor",
			"Setter",
			"C",
		},
		{
			"Apa fungsi keyword 'super' dalam Java?",
			"Membuat variable super besar",
			"Memanggil constructor atau method dari parent class",
			"Membuat class menjadi abstract",
			"Mengakses static method",
			"B",
		},
	}

	for _, item := range questions {
		q, err := domain.NewQuestion(item.prompt, item.a, item.b, item.c, item.d, item.correct)
		if err != nil {
			panic(fmt.Sprintf("seed: question %q: %v", item.prompt, err))
		}
		if err := test.AddQuestion(*q); err != nil {
			panic(fmt.Sprintf("seed: question %q: %v", item.prompt, err))
		}
	}

	if err := s.CreateTest(ctx, test); err != nil {
		panic(fmt.Sprintf("seed: test: %v", err))
	}
}

// seedMaterials builds the six OOP learning materials, three per topic.
func (s *Store) seedMaterials(ctx context.Context, authorID int) {
	materials := []struct {
		title, content, topic string
	}{
		{
			"Pengenalan OOP",
			"Object-Oriented Programming (OOP) adalah paradigma pemrograman yang berfokus pada konsep object. " +
				"Object adalah instance dari class yang memiliki attributes (data) dan methods (behavior). " +
				"OOP memiliki 4 pilar utama: Encapsulation, Inheritance, Polymorphism, dan Abstraction. " +
				"Dengan OOP, kita bisa membuat program yang lebih modular, terstruktur, dan mudah di-maintain.",
			"Dasar OOP",
		},
		{
			"Class dan Object",
			"Class adalah template atau blueprint untuk membuat object. Class mendefinisikan attributes " +
				"(properties/fields) dan methods (functions) yang akan dimiliki object. " +
				"Object adalah instance atau realisasi konkret dari class. Satu class bisa digunakan untuk " +
				"membuat banyak object. Contoh: Class 'Mobil' bisa membuat object mobil1, mobil2, dst.",
			"Dasar OOP",
		},
		{
			"Encapsulation",
			"Encapsulation adalah pembungkusan data (attributes) dan methods yang bekerja pada data tersebut " +
				"dalam satu unit (class). Tujuannya adalah untuk menyembunyikan implementasi internal dan hanya " +
				"mengekspos yang perlu diakses dari luar. Implementasi: menggunakan access modifiers (private, " +
				"protected, public) dan getter/setter methods.",
			"Dasar OOP",
		},
		{
			"Inheritance (Pewarisan)",
			"Inheritance adalah mekanisme dimana sebuah class (child/subclass) dapat mewarisi attributes dan " +
				"methods dari class lain (parent/superclass). Keuntungan: code reusability, hierarki class yang " +
				"jelas, dan memudahkan maintenance. Di Java, menggunakan keyword 'extends'. Contoh: class Siswa " +
				"extends User.",
			"Advanced OOP",
		},
		{
			"Polymorphism",
			"Polymorphism berarti 'banyak bentuk'. Dalam OOP, polymorphism memungkinkan satu interface untuk " +
				"digunakan dengan berbagai tipe data atau object yang berbeda. Ada 2 jenis: Compile-time " +
				"polymorphism (method overloading) dan Runtime polymorphism (method overriding). Contoh: method " +
				"toString() yang di-override di setiap class.",
			"Advanced OOP",
		},
		{
			"Abstraction",
			"Abstraction adalah proses menyembunyikan detail implementasi dan hanya menampilkan fungsionalitas " +
				"kepada user. Fokus pada 'apa yang dilakukan' bukan 'bagaimana melakukannya'. Implementasi " +
				"menggunakan abstract class atau interface. Contoh: kita tahu mobil bisa jalan, tapi tidak perlu " +
				"tahu detail mesin.",
			"Advanced OOP",
		},
	}

	for _, item := range materials {
		m, err := domain.NewMaterial(item.title, item.content, item.topic, authorID)
		if err == nil {
			err = s.CreateMaterial(ctx, m)
		}
		if err != nil {
			panic(fmt.Sprintf("seed: material %q: %v", item.title, err))
		}
	}
}
